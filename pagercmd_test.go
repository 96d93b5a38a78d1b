package pgr

import (
	"reflect"
	"testing"
)

func TestPagerCommandDefault(t *testing.T) {
	t.Setenv("PGRPAGER", "")
	t.Setenv("PAGER", "")
	if got := PagerCommand(""); !reflect.DeepEqual(got, []string{DefaultPager}) {
		t.Fatalf("PagerCommand()=%v want [%s]", got, DefaultPager)
	}
}

func TestPagerCommandPrecedence(t *testing.T) {
	t.Setenv("PGRPAGER", "less -R")
	t.Setenv("PAGER", "more")
	if got := PagerCommand(""); !reflect.DeepEqual(got, []string{"less", "-R"}) {
		t.Fatalf("PGRPAGER should win over PAGER, got %v", got)
	}
	if got := PagerCommand("bat --paging=always"); !reflect.DeepEqual(got, []string{"bat", "--paging=always"}) {
		t.Fatalf("explicit override should win, got %v", got)
	}
}

func TestPagerCommandFallsThroughToPager(t *testing.T) {
	t.Setenv("PGRPAGER", "")
	t.Setenv("PAGER", "more")
	if got := PagerCommand(""); !reflect.DeepEqual(got, []string{"more"}) {
		t.Fatalf("PagerCommand()=%v want [more]", got)
	}
}

func TestPagerCommandSplitsQuotedArguments(t *testing.T) {
	t.Setenv("PGRPAGER", "")
	t.Setenv("PAGER", `less -P "lines %lt-%lb"`)
	want := []string{"less", "-P", "lines %lt-%lb"}
	if got := PagerCommand(""); !reflect.DeepEqual(got, want) {
		t.Fatalf("PagerCommand()=%v want %v", got, want)
	}
}

func TestPagerCommandSkipsUnparseableValues(t *testing.T) {
	t.Setenv("PGRPAGER", "less 'unterminated")
	t.Setenv("PAGER", "more")
	if got := PagerCommand(""); !reflect.DeepEqual(got, []string{"more"}) {
		t.Fatalf("unparseable PGRPAGER should fall through, got %v", got)
	}
}
