package cluster

import "testing"

func TestBaseKClampsToBounds(t *testing.T) {
	cases := []struct {
		nVoters int
		want    int
	}{
		{nVoters: 50, want: 10},
		{nVoters: 500, want: 50},
		{nVoters: 2000, want: 100},
		{nVoters: 5, want: 5},
	}
	for _, c := range cases {
		if got := BaseK(c.nVoters); got != c.want {
			t.Errorf("BaseK(%d) = %d, want %d", c.nVoters, got, c.want)
		}
	}
}
