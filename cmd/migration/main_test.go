package main

import "testing"

func TestParseSteps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr bool
	}{
		{name: "default one", args: nil, want: 1},
		{name: "explicit", args: []string{"3"}, want: 3},
		{name: "zero", args: []string{"0"}, wantErr: true},
		{name: "garbage", args: []string{"x"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSteps(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("unexpected error state err=%v wantErr=%t", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Fatalf("got=%d want=%d", got, tt.want)
			}
		})
	}
}

func TestNormalizeDBURL(t *testing.T) {
	t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "")

	got := normalizeDBURL("postgres://u:p@localhost:5432/ledger?sslmode=disable")
	want := "postgres://u:p@localhost:5432/ledger?sslmode=disable&disable_prepared_binary_result=yes"
	if got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}

	explicit := "postgres://u:p@localhost:5432/ledger?disable_prepared_binary_result=no"
	if got := normalizeDBURL(explicit); got != explicit {
		t.Fatalf("expected explicit value kept, got=%q", got)
	}

	t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "false")
	plain := "postgres://u:p@localhost:5432/ledger"
	if got := normalizeDBURL(plain); got != plain {
		t.Fatalf("expected url unchanged, got=%q", got)
	}
}

func TestNewRootCommand_Subcommands(t *testing.T) {
	t.Parallel()

	root := newRootCommand(nil)
	for _, name := range []string{"up", "down", "version", "force", "goto", "migrate"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd == root {
			t.Fatalf("expected subcommand %q, err=%v", name, err)
		}
	}
}
