package publish

import "testing"

func TestChangeDirFor_WindowsSwitchesDrive(t *testing.T) {
	got := changeDirFor("windows", "D:/work/catalyzer-core/")

	if got != `cd /d "D:/work/catalyzer-core/"` {
		t.Fatalf("unexpected fragment %q", got)
	}
}

func TestChangeDirFor_POSIXQuotesPath(t *testing.T) {
	got := changeDirFor("linux", "/src/it's here/")

	if got != `cd '/src/it'\''s here/'` {
		t.Fatalf("unexpected fragment %q", got)
	}
}
