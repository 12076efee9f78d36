package main

import "testing"

func TestGameArg(t *testing.T) {
	tests := []struct {
		args    []string
		want    string
		wantErr bool
	}{
		{nil, "shadowflap", false},
		{[]string{"shadowflap_l2"}, "shadowflap_l2", false},
		{[]string{"pong"}, "", true},
	}

	for _, tt := range tests {
		got, err := gameArg(tt.args)
		if (err != nil) != tt.wantErr {
			t.Errorf("gameArg(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("gameArg(%v) = %q, expected %q", tt.args, got, tt.want)
		}
	}
}

func TestPortOf(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"0.0.0.0:2222":   "2222",
		"[::1]:22":       "22",
		"no-port-at-all": "no-port-at-all",
	}
	for in, want := range tests {
		if got := portOf(in); got != want {
			t.Errorf("portOf(%q) = %q, expected %q", in, got, want)
		}
	}
}
