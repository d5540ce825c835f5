package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/cespare/advent/crates"
	"github.com/google/go-cmp/cmp"
)

// capture redirects stdin, stdout and stderr for the duration of a test.
func capture(t *testing.T, in string) (out, errOut *bytes.Buffer) {
	t.Helper()
	out, errOut = new(bytes.Buffer), new(bytes.Buffer)
	oldIn, oldOut, oldErr := stdin, stdout, stderr
	stdin, stdout, stderr = strings.NewReader(in), out, errOut
	t.Cleanup(func() { stdin, stdout, stderr = oldIn, oldOut, oldErr })
	return out, errOut
}

func TestNameLess(t *testing.T) {
	names := []string{"10a", "2b", "5step", "1", "2a", "5a", "11"}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	want := []string{"1", "2a", "2b", "5a", "5step", "10a", "11"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestSolutionNames(t *testing.T) {
	want := []string{"5a", "5b", "5step"}
	if diff := cmp.Diff(want, solutionNames()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestRegisterBadName(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("register with a name lacking a day number did not panic")
		}
	}()
	register("step", nil)
}

func TestDay5(t *testing.T) {
	for _, tt := range []struct {
		name string
		args []string
		in   string
		want string
	}{
		{"5a", []string{"testdata/sample.txt"}, "", "CMZ\n"},
		{"5b", []string{"testdata/sample.txt"}, "", "MCD\n"},
		{"5a", nil, "", "BWNCQRMDB\n"},
		{"5b", nil, "", "NHWZCBNBF\n"},
		{"5b", []string{"-"}, "[A] [B]\n[C] [D]\n 1   2\n\nmove 1 from 2 to 1\n", "BD\n"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			out, _ := capture(t, tt.in)
			if err := solutions[tt.name](&config{}, tt.args); err != nil {
				t.Fatal(err)
			}
			if got := out.String(); got != tt.want {
				t.Errorf("%s %q: got %q; want %q", tt.name, tt.args, got, tt.want)
			}
		})
	}
}

func TestDay5Verbose(t *testing.T) {
	out, errOut := capture(t, "")
	if err := solutions["5a"](&config{}, []string{"-v"}); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "BWNCQRMDB\n"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
	if want := "single-item crane: 504 moves, 2,512 crates moved\n"; !strings.HasPrefix(errOut.String(), want) {
		t.Errorf("stderr begins %q; want %q", errOut.String(), want)
	}
	if !strings.HasSuffix(errOut.String(), " 1   2   3   4   5   6   7   8   9\n") {
		t.Errorf("stderr does not end with the label line:\n%s", errOut)
	}
}

func TestDay5Debug(t *testing.T) {
	_, errOut := capture(t, "")
	if err := solutions["5b"](&config{}, []string{"-debug", "testdata/sample.txt"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(errOut.String(), "crates.Puzzle") {
		t.Errorf("debug output does not describe the puzzle:\n%s", errOut)
	}
}

func TestDay5Errors(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want string
	}{
		{"[A]\n 1\n\nmove 2 from 1 to 1\n", "not enough crates"},
		{"[A]\n 1\n\nmove 1 from 1 to 2\n", "unknown stack label"},
		{"[A]\n 1\n\nmove 0 from 1 to 1\n", "line 4"},
		{"[A\n 1\n", "malformed stack layout"},
		{"[A]\n 1   2\n", "empty stack"},
	} {
		capture(t, tt.in)
		err := solutions["5a"](&config{}, []string{"-"})
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("input %q: got err %v; want it to contain %q", tt.in, err, tt.want)
		}
	}
}

func TestReadInput(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "arg.txt"), "from arg")
	writeFile(t, filepath.Join(dir, "cfg.txt"), "from config")
	cfgPath := filepath.Join(dir, "config.ini")
	writeFile(t, cfgPath, "[day5]\ninput = cfg.txt\n")
	cfg, err := loadConfigFile(cfgPath, true)
	if err != nil {
		t.Fatal(err)
	}

	capture(t, "from stdin")
	for _, tt := range []struct {
		cfg  *config
		args []string
		want string
	}{
		{cfg, []string{filepath.Join(dir, "arg.txt")}, "from arg"},
		{cfg, []string{"-"}, "from stdin"},
		{cfg, nil, "from config"},
		{&config{}, nil, day5Input},
	} {
		got, err := readInput(tt.cfg, 5, tt.args)
		if err != nil {
			t.Errorf("readInput(%q): %s", tt.args, err)
			continue
		}
		if got != tt.want {
			t.Errorf("readInput(%q): got %.20q; want %.20q", tt.args, got, tt.want)
		}
	}

	if _, err := readInput(&config{}, 6, nil); err == nil {
		t.Error("readInput for a day with no input: got nil error")
	}
	if _, err := readInput(&config{}, 5, []string{"a", "b"}); err == nil {
		t.Error("readInput with two args: got nil error")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "advent.ini")
	writeFile(t, path, "[day5]\ninput = /abs/day5.txt\n\n[day6]\ninput = rel/day6.txt\n")
	t.Setenv("ADVENT_CONFIG", path)
	cfg, err := loadConfig()
	if err != nil {
		t.Fatal(err)
	}
	for _, tt := range []struct {
		day  int
		want string
	}{
		{5, "/abs/day5.txt"},
		{6, filepath.Join(dir, "rel", "day6.txt")},
		{7, ""},
	} {
		if got := cfg.inputPath(tt.day); got != tt.want {
			t.Errorf("inputPath(%d): got %q; want %q", tt.day, got, tt.want)
		}
	}

	t.Setenv("ADVENT_CONFIG", filepath.Join(dir, "missing.ini"))
	if _, err := loadConfig(); err == nil {
		t.Error("loadConfig with a missing $ADVENT_CONFIG file: got nil error")
	}
	cfg, err = loadConfigFile(filepath.Join(dir, "missing.ini"), false)
	if err != nil {
		t.Fatalf("loadConfigFile of missing optional file: %s", err)
	}
	if got := cfg.inputPath(5); got != "" {
		t.Errorf("empty config: got input path %q", got)
	}
}

type fakeReader []string

func (r *fakeReader) Readline() (string, error) {
	if len(*r) == 0 {
		return "", io.EOF
	}
	line := (*r)[0]
	*r = (*r)[1:]
	return line, nil
}

func TestStepLoop(t *testing.T) {
	for _, tt := range []struct {
		lines   []string
		mode    crates.Mode
		wantPos int
		wantEnd string
	}{
		{[]string{"", "n", "x", "p", "r"}, crates.SingleItem, 4, "CMZ\n"},
		{[]string{"2", "10"}, crates.Bulk, 4, "MCD\n"},
		{[]string{"n", "q", "n"}, crates.Bulk, 1, " 1   2   3\n"},
		{[]string{"3"}, crates.SingleItem, 3, " 1   2   3\n"},
	} {
		p, err := crates.Parse(sampleInput(t))
		if err != nil {
			t.Fatal(err)
		}
		m := crates.NewMachine(p.Stacks, p.Moves, tt.mode)
		r := fakeReader(tt.lines)
		var out bytes.Buffer
		if err := stepLoop(&r, &out, m, p.Order); err != nil {
			t.Errorf("%q: %s", tt.lines, err)
			continue
		}
		if m.Pos() != tt.wantPos {
			t.Errorf("%q: got pos %d; want %d", tt.lines, m.Pos(), tt.wantPos)
		}
		if !strings.HasSuffix(out.String(), tt.wantEnd) {
			t.Errorf("%q: output does not end with %q:\n%s", tt.lines, tt.wantEnd, out.String())
		}
	}
}

func TestStepLoopHelp(t *testing.T) {
	p, err := crates.Parse(sampleInput(t))
	if err != nil {
		t.Fatal(err)
	}
	r := fakeReader{"bogus"}
	var out bytes.Buffer
	if err := stepLoop(&r, &out, crates.NewMachine(p.Stacks, p.Moves, crates.Bulk), p.Order); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), stepHelp) {
		t.Errorf("unknown command did not print help:\n%s", out.String())
	}
}

func sampleInput(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile("testdata/sample.txt")
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
}
