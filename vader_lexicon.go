package episodic

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// loadIntensityLexicon parses a tab-separated "word<TAB>measure" lexicon
// file. Blank lines and lines starting with '#' are skipped; lines with
// extra columns (source lexica often carry stddev and raw ratings) keep only
// the first two.
func loadIntensityLexicon(path string) (map[string]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon %s: %w", path, err)
	}
	defer f.Close()

	lexicon := make(map[string]float64, 1024)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) < 2 {
			continue
		}
		measure, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("lexicon %s line %d: measure %q: %w", path, lineNum, parts[1], err)
		}
		lexicon[strings.TrimSpace(parts[0])] = measure
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lexicon %s: %w", path, err)
	}
	return lexicon, nil
}

// builtinIntensityLexicon is a compact core of the VADER intensity ratings:
// mean human valence judgments on a [-4, 4] scale. It covers the high
// frequency sentiment vocabulary of conversational English plus emoticons
// and common slang; an external lexicon file can extend or override it.
var builtinIntensityLexicon = map[string]float64{
	// positive
	"admire": 2.4, "adore": 2.9, "amazing": 2.8, "appreciate": 2.0,
	"awesome": 3.1, "beautiful": 2.9, "best": 3.2, "better": 1.9,
	"bless": 2.2, "brave": 2.4, "bright": 1.9, "brilliant": 2.8,
	"calm": 1.3, "care": 2.0, "celebrate": 2.7, "charming": 2.4,
	"cheerful": 2.5, "clean": 1.7, "clever": 2.2, "comfort": 1.9,
	"confident": 2.2, "cool": 1.3, "courage": 2.2, "cute": 2.0,
	"delight": 2.9, "delicious": 2.5, "determined": 1.5, "dream": 1.6,
	"eager": 1.7, "easy": 1.5, "enjoy": 2.2, "epic": 2.0,
	"excellent": 2.7, "excited": 2.3, "fabulous": 2.9, "fair": 1.6,
	"faith": 1.9, "fantastic": 2.6, "favorite": 2.0, "fine": 0.8,
	"free": 2.3, "freedom": 2.6, "friend": 2.2, "friendly": 2.2,
	"fun": 2.3, "funny": 1.9, "generous": 2.3, "genius": 2.6,
	"gentle": 1.9, "gift": 1.9, "glad": 2.0, "glorious": 2.8,
	"good": 1.9, "gorgeous": 2.8, "grace": 1.9, "grateful": 2.3,
	"great": 3.1, "greatest": 3.2, "happy": 2.7, "handsome": 2.2,
	"heal": 2.0, "healthy": 1.9, "heaven": 2.7, "help": 1.7,
	"hero": 2.6, "honest": 2.3, "honor": 2.4, "hope": 1.9,
	"hopeful": 2.0, "hug": 2.1, "impressive": 2.3, "incredible": 2.8,
	"innocent": 1.6, "inspire": 2.4, "interesting": 1.7, "joy": 2.9,
	"kind": 2.4, "laugh": 2.6, "legend": 2.1, "like": 1.5,
	"love": 3.2, "loved": 2.9, "lovely": 2.8, "loyal": 2.3,
	"lucky": 2.4, "magnificent": 2.9, "marvelous": 2.8, "master": 1.4,
	"nice": 1.8, "okay": 0.9, "ok": 0.9, "peace": 2.5,
	"peaceful": 2.4, "perfect": 2.7, "play": 1.5, "pleasant": 2.3,
	"please": 1.3, "pleased": 2.1, "powerful": 1.6, "precious": 2.4,
	"pretty": 2.2, "protect": 1.8, "proud": 2.1, "rejoice": 2.8,
	"relief": 1.9, "rescue": 1.9, "respect": 2.1, "safe": 1.9,
	"save": 2.2, "smart": 1.7, "smile": 2.3, "special": 1.7,
	"splendid": 2.7, "strong": 2.3, "succeed": 2.4, "success": 2.7,
	"super": 2.9, "sweet": 2.0, "terrific": 2.9, "thank": 1.9,
	"thanks": 1.9, "triumph": 2.8, "trust": 2.1, "truth": 1.8,
	"victory": 2.8, "warm": 1.7, "welcome": 2.0, "win": 2.8,
	"winner": 2.8, "wisdom": 2.4, "wise": 2.2, "wonderful": 2.7,
	"worthy": 1.9, "wow": 2.8, "yay": 2.4, "yes": 1.7,

	// negative
	"abandon": -1.9, "afraid": -2.2, "alone": -1.0, "angry": -2.3,
	"annoy": -1.8, "anxious": -1.9, "ashamed": -2.1, "attack": -2.1,
	"awful": -2.0, "bad": -2.5, "betray": -3.0, "bitter": -1.8,
	"blame": -1.4, "boring": -1.3, "broken": -1.9, "brutal": -2.6,
	"cruel": -3.0, "cry": -2.1, "damage": -2.2, "danger": -2.4,
	"dangerous": -2.3, "dark": -1.0, "dead": -3.3, "death": -2.9,
	"defeat": -2.0, "depressed": -2.3, "despair": -2.8, "destroy": -2.6,
	"destruction": -2.6, "die": -2.9, "dirty": -1.8, "disappointed": -2.1,
	"disappointing": -2.2, "disaster": -3.1, "disgust": -2.9, "doom": -2.2,
	"doubt": -1.5, "dread": -2.3, "dumb": -2.3, "enemy": -2.2,
	"evil": -3.4, "fail": -2.5, "failure": -2.6, "fake": -1.9,
	"fear": -2.2, "fight": -1.6, "filthy": -2.4, "fool": -1.9,
	"foolish": -2.0, "forbid": -1.6, "fraud": -2.8, "frightened": -2.2,
	"furious": -2.7, "grief": -2.7, "guilt": -2.1, "harm": -2.4,
	"hate": -2.7, "hated": -2.8, "hell": -2.6, "helpless": -2.1,
	"horrible": -2.5, "horror": -2.7, "hostile": -2.2, "hurt": -2.4,
	"ignore": -1.5, "insult": -2.3, "jealous": -2.1, "kill": -3.7,
	"killed": -3.4, "liar": -2.7, "lie": -1.8, "lonely": -2.0,
	"lose": -1.9, "loser": -2.5, "loss": -1.9, "lost": -1.3,
	"mad": -2.2, "mess": -1.5, "miserable": -2.7, "miss": -0.9,
	"mistake": -1.7, "murder": -3.6, "nasty": -2.6, "no": -1.2,
	"pain": -2.5, "painful": -2.4, "panic": -2.2, "pathetic": -2.6,
	"poison": -2.6, "poor": -1.9, "punish": -2.2, "rage": -2.5,
	"regret": -1.9, "reject": -1.9, "ruin": -2.4, "sad": -2.1,
	"scared": -2.2, "scary": -2.2, "shame": -2.1, "sick": -2.0,
	"sorrow": -2.5, "steal": -2.4, "stupid": -2.4, "suffer": -2.5,
	"sux": -1.5, "terrible": -2.1, "threat": -2.2, "tragedy": -3.1,
	"trapped": -1.9, "ugly": -2.3, "unhappy": -2.2, "upset": -1.9,
	"useless": -2.0, "vicious": -2.6, "victim": -2.0, "villain": -2.4,
	"violence": -3.1, "war": -2.9, "waste": -1.8, "weak": -1.9,
	"wicked": -2.4, "worse": -2.1, "worst": -3.1, "worthless": -2.7,
	"wound": -2.2, "wrong": -2.1,

	// slang and initialisms
	"lol": 1.8, "lmao": 2.1, "meh": -0.7, "nah": -0.9,
	"omg": 1.3, "woot": 2.2, "yeah": 1.2, "yikes": -1.2,

	// emoticons
	":)": 2.0, ":-)": 2.2, ":))": 2.4, ":D": 2.3, ":-D": 2.3,
	"=)": 2.1, "=D": 2.5, ";)": 1.6, ";-)": 1.8, "<3": 3.0,
	":(": -1.9, ":-(": -1.7, ":((": -2.2, "=(": -2.0, "D:": -1.6,
	":/": -1.3, ":-/": -1.4, ":'(": -2.2, ":')": 2.0, "</3": -2.9,
}
