package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMAC(t *testing.T) {
	tests := map[string]struct {
		raw    string
		want   string
		wantOK bool
	}{
		"canonical":      {raw: "00:11:22:33:44:55", want: "00:11:22:33:44:55", wantOK: true},
		"uppercase":      {raw: "AA:BB:CC:DD:EE:FF", want: "aa:bb:cc:dd:ee:ff", wantOK: true},
		"dash separated": {raw: "AA-BB-CC-DD-EE-FF", want: "aa:bb:cc:dd:ee:ff", wantOK: true},
		"compressed":     {raw: "0:1b:2:3d:4e:f", want: "00:1b:02:3d:4e:0f", wantOK: true},
		"bare hex":       {raw: "001122AABBCC", want: "00:11:22:aa:bb:cc", wantOK: true},
		"surrounding ws": {raw: "  00:11:22:33:44:55\n", want: "00:11:22:33:44:55", wantOK: true},
		"five octets":    {raw: "00:11:22:33:44"},
		"seven octets":   {raw: "00:11:22:33:44:55:66"},
		"wide octet":     {raw: "000:11:22:33:44:55"},
		"empty octet":    {raw: "00::22:33:44:55"},
		"not hex":        {raw: "zz:11:22:33:44:55"},
		"short bare hex": {raw: "0011223344"},
		"empty":          {raw: ""},
		"placeholder":    {raw: MACNotFound},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := NormalizeMAC(test.raw)
			assert.Equal(t, test.wantOK, ok)
			assert.Equal(t, test.want, got)
		})
	}
}
