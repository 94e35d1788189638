// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bintrie

import (
	"net/netip"
	"testing"
)

type stringTest struct {
	cidrs []netip.Prefix
	want  string
}

func TestStringPanic(t *testing.T) {
	t.Parallel()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Fprint(nil) did not panic")
		}
	}()

	trie := new(Trie)
	trie.Insert(mpp("1.2.3.4/32"))
	trie.Fprint(nil)
}

func TestStringEmpty(t *testing.T) {
	t.Parallel()
	checkString(t, new(Trie), stringTest{
		cidrs: []netip.Prefix{},
		want:  "",
	})
}

func TestStringDefaultRoute(t *testing.T) {
	t.Parallel()
	checkString(t, new(Trie), stringTest{
		cidrs: []netip.Prefix{
			mpp("0.0.0.0/0"),
			mpp("10.0.0.0/8"),
		},
		want: `▼
└─ 0.0.0.0/0
   └─ 10.0.0.0/8
`,
	})
}

func TestStringSample(t *testing.T) {
	t.Parallel()
	checkString(t, new(Trie), stringTest{
		cidrs: []netip.Prefix{
			mpp("172.16.0.0/12"),
			mpp("10.0.0.0/24"),
			mpp("192.168.0.0/16"),
			mpp("10.0.0.0/8"),
			mpp("10.0.1.0/24"),
			mpp("169.254.0.0/16"),
			mpp("127.0.0.0/8"),
			mpp("127.0.0.1/32"),
			mpp("192.168.1.0/24"),
		},
		want: `▼
├─ 10.0.0.0/8
│  ├─ 10.0.0.0/24
│  └─ 10.0.1.0/24
├─ 127.0.0.0/8
│  └─ 127.0.0.1/32
├─ 169.254.0.0/16
├─ 172.16.0.0/12
└─ 192.168.0.0/16
   └─ 192.168.1.0/24
`,
	})
}

func TestStringDeleted(t *testing.T) {
	t.Parallel()

	trie := new(Trie)
	trie.Insert(mpp("10.0.0.0/8"))
	trie.Insert(mpp("10.20.0.0/16"))
	trie.Insert(mpp("10.20.30.0/24"))
	trie.Delete(mpp("10.20.0.0/16"))

	want := `▼
└─ 10.0.0.0/8
   └─ 10.20.30.0/24
`
	if got := trie.String(); got != want {
		t.Errorf("String:\n%swant:\n%s", got, want)
	}

	text, err := trie.MarshalText()
	if err != nil || string(text) != want {
		t.Errorf("MarshalText:\n%s, err: %v\nwant:\n%s", text, err, want)
	}
}

func checkString(t *testing.T, trie *Trie, tt stringTest) {
	t.Helper()

	for _, cidr := range tt.cidrs {
		trie.Insert(cidr)
	}

	got := trie.String()
	if tt.want != got {
		t.Errorf("String got:\n%swant:\n%s", got, tt.want)
	}
}
