package pgr

import (
	"os"

	"github.com/google/shlex"
)

// DefaultPager is used when no pager is configured.
const DefaultPager = "less"

// envPagerVars are consulted in order for the pager command line.
var envPagerVars = []string{"PGRPAGER", "PAGER"}

// PagerCommand resolves the pager argv. An explicit override wins,
// then PGRPAGER, then PAGER, then DefaultPager. Values are shell-token
// split so quoted arguments survive (e.g. PAGER='less -P "more?"');
// unparseable values are skipped.
func PagerCommand(override string) []string {
	if argv := splitPager(override); argv != nil {
		return argv
	}
	for _, name := range envPagerVars {
		if argv := splitPager(os.Getenv(name)); argv != nil {
			return argv
		}
	}
	return []string{DefaultPager}
}

func splitPager(value string) []string {
	if value == "" {
		return nil
	}
	argv, err := shlex.Split(value)
	if err != nil || len(argv) == 0 {
		return nil
	}
	return argv
}
