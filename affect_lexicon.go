package episodic

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// loadAffectNorms parses a tab-separated "word<TAB>valence<TAB>arousal"
// norms file. Blank lines and '#' comments are skipped.
func loadAffectNorms(path string) (map[string]AffectScore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open norms %s: %w", path, err)
	}
	defer f.Close()

	norms := make(map[string]AffectScore, 1024)
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) < 3 {
			continue
		}
		valence, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("norms %s line %d: valence %q: %w", path, lineNum, parts[1], err)
		}
		arousal, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("norms %s line %d: arousal %q: %w", path, lineNum, parts[2], err)
		}
		norms[strings.TrimSpace(parts[0])] = AffectScore{Valence: valence, Arousal: arousal}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read norms %s: %w", path, err)
	}
	return norms, nil
}

// builtinAffectNorms is a compact core of affective norms: mean valence and
// arousal ratings on a 1-9 scale in the style of the ANEW word list. An
// external norms file can extend or override it.
var builtinAffectNorms = map[string]AffectScore{
	"adventure": {7.60, 6.98}, "afraid": {2.00, 6.83}, "alone": {2.41, 4.83},
	"angry": {2.85, 7.17}, "anger": {2.34, 7.63}, "anxious": {3.25, 6.92},
	"attack": {2.17, 7.09}, "baby": {8.22, 5.53}, "battle": {3.28, 7.13},
	"beach": {8.03, 5.53}, "beautiful": {7.60, 6.17}, "betray": {1.68, 7.24},
	"bird": {7.27, 3.17}, "bless": {7.19, 4.05}, "blood": {3.47, 6.40},
	"bored": {2.95, 2.83}, "brave": {7.15, 6.15}, "bright": {7.03, 5.40},
	"broken": {3.05, 5.43}, "brother": {7.11, 4.71}, "burn": {2.73, 6.22},
	"calm": {6.89, 2.97}, "chaos": {3.05, 6.67}, "cheer": {8.10, 6.12},
	"child": {7.08, 5.55}, "comfort": {7.07, 3.93}, "crash": {2.31, 6.95},
	"cruel": {1.97, 5.68}, "cry": {1.84, 7.22}, "danger": {2.95, 7.32},
	"dark": {4.71, 4.28}, "dead": {1.94, 5.73}, "death": {1.61, 4.59},
	"defeat": {2.74, 5.09}, "despair": {2.43, 5.68}, "destroy": {2.64, 6.83},
	"die": {1.74, 5.59}, "dream": {6.73, 4.53}, "earth": {7.15, 4.24},
	"easy": {7.10, 4.48}, "enemy": {2.57, 6.47}, "evil": {3.23, 6.39},
	"excited": {7.67, 7.38}, "fail": {1.96, 6.04}, "faith": {6.90, 4.18},
	"fall": {4.04, 4.70}, "family": {7.65, 4.80}, "famous": {6.98, 5.73},
	"fear": {2.76, 6.96}, "fight": {3.76, 7.15}, "fire": {3.22, 7.17},
	"flower": {6.64, 4.00}, "free": {8.26, 5.15}, "freedom": {7.58, 5.52},
	"friend": {7.74, 5.74}, "fun": {8.37, 7.22}, "game": {6.98, 5.89},
	"gentle": {7.31, 3.21}, "gift": {7.77, 6.14}, "glad": {7.48, 5.00},
	"glory": {7.55, 6.02}, "good": {7.47, 5.43}, "grief": {1.69, 4.78},
	"guilt": {2.63, 6.04}, "happy": {8.21, 6.49}, "hate": {2.12, 6.95},
	"heal": {7.09, 4.77}, "heart": {7.39, 6.34}, "hell": {2.24, 5.38},
	"help": {7.33, 5.44}, "hero": {7.54, 6.83}, "home": {7.91, 4.21},
	"honest": {7.70, 5.32}, "honor": {7.66, 5.90}, "hope": {7.05, 5.78},
	"horror": {2.76, 7.21}, "hug": {8.00, 5.35}, "hungry": {3.58, 5.13},
	"hurt": {1.90, 5.85}, "island": {7.14, 4.74}, "joy": {8.21, 5.98},
	"kill": {1.81, 7.24}, "kind": {7.59, 4.30}, "king": {7.26, 5.51},
	"kiss": {8.26, 7.32}, "laugh": {8.45, 6.74}, "learn": {7.02, 5.39},
	"life": {7.27, 6.02}, "light": {7.35, 5.40}, "lonely": {2.17, 4.51},
	"lost": {2.82, 5.82}, "love": {8.72, 6.44}, "loyal": {7.55, 5.16},
	"lucky": {8.17, 6.53}, "mad": {2.44, 6.76}, "master": {5.20, 5.75},
	"mercy": {6.68, 4.22}, "mighty": {6.54, 5.61}, "monster": {3.15, 6.10},
	"moon": {7.14, 4.08}, "mother": {8.39, 6.13}, "mountain": {6.59, 5.49},
	"murder": {1.48, 7.29}, "music": {8.13, 5.32}, "nervous": {3.29, 6.59},
	"nice": {6.55, 4.38}, "night": {6.22, 4.28}, "ocean": {7.12, 4.95},
	"pain": {2.13, 6.50}, "panic": {3.12, 7.02}, "peace": {7.72, 2.95},
	"play": {8.03, 5.89}, "power": {6.54, 6.67}, "powerful": {6.84, 5.83},
	"pride": {7.00, 5.83}, "prison": {2.05, 5.70}, "protect": {7.29, 5.26},
	"proud": {8.03, 5.56}, "punish": {2.22, 5.93}, "quiet": {5.58, 2.82},
	"rage": {2.41, 8.17}, "rain": {5.08, 3.65}, "rescue": {7.70, 6.53},
	"respect": {7.64, 5.19}, "river": {6.85, 4.51}, "sad": {1.61, 4.13},
	"safe": {7.07, 3.86}, "scared": {2.78, 6.82}, "sea": {7.12, 4.76},
	"secret": {5.02, 5.92}, "shame": {2.50, 4.88}, "sick": {1.90, 4.29},
	"sister": {7.91, 5.00}, "sky": {7.37, 4.27}, "smile": {7.67, 5.57},
	"sorrow": {2.28, 5.01}, "spirit": {7.00, 5.56}, "storm": {4.95, 5.71},
	"strong": {7.11, 5.92}, "suffer": {2.04, 5.00}, "sun": {7.55, 5.04},
	"sweet": {7.08, 4.46}, "tears": {2.50, 5.43}, "terrible": {1.93, 6.27},
	"terror": {1.96, 7.86}, "thank": {6.89, 4.34}, "threat": {2.60, 7.01},
	"thunder": {5.14, 6.40}, "trust": {7.22, 5.30}, "truth": {7.80, 5.48},
	"ugly": {2.43, 5.38}, "victory": {8.32, 6.63}, "village": {5.92, 4.08},
	"violence": {2.29, 7.15}, "war": {2.08, 7.49}, "warm": {7.41, 3.73},
	"water": {6.61, 4.97}, "weak": {3.16, 4.60}, "wicked": {2.96, 6.09},
	"win": {8.38, 7.72}, "wind": {6.13, 4.12}, "wisdom": {7.54, 4.91},
	"wise": {7.52, 4.91}, "wound": {2.51, 5.82}, "young": {6.89, 5.64},
}
