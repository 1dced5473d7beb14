package xaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddr4Constructors(t *testing.T) {
	t.Run("from uint32", func(t *testing.T) {
		a := Addr4FromUint32(0xC0A80101)
		assert.Equal(t, uint32(0xC0A80101), a.Uint32())
		assert.Equal(t, "192.168.1.1", a.String())
	})

	t.Run("from array", func(t *testing.T) {
		a := Addr4From4([4]byte{10, 20, 30, 40})
		assert.Equal(t, [4]byte{10, 20, 30, 40}, a.As4())
	})

	t.Run("from bytes", func(t *testing.T) {
		a, err := Addr4FromBytes([]byte{8, 8, 8, 8})
		require.NoError(t, err)
		assert.Equal(t, uint32(0x08080808), a.Uint32())
	})

	t.Run("from bytes wrong length", func(t *testing.T) {
		for _, b := range [][]byte{nil, {}, {1, 2, 3}, {1, 2, 3, 4, 5}, make([]byte, 16)} {
			_, err := Addr4FromBytes(b)
			assert.ErrorIs(t, err, ErrInvalidAddress, "len %d", len(b))
		}
	})

	t.Run("bytes copy", func(t *testing.T) {
		a := MustParse4("1.2.3.4")
		b := a.Bytes()
		require.Equal(t, []byte{1, 2, 3, 4}, b)

		// 返回的是副本，改写它不影响地址值
		b[0] = 99
		assert.Equal(t, []byte{1, 2, 3, 4}, a.Bytes())
	})
}

func TestAddr4ZeroValue(t *testing.T) {
	var a Addr4
	assert.Equal(t, "0.0.0.0", a.String())
	assert.True(t, a.IsUnspecified())
	assert.Equal(t, V4, a.Version())
}

func TestAddr4Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "less", a: "1.2.3.4", b: "1.2.3.5", want: -1},
		{name: "equal", a: "1.2.3.4", b: "1.2.3.4", want: 0},
		{name: "greater", a: "1.2.3.5", b: "1.2.3.4", want: 1},
		{name: "high octet dominates", a: "2.0.0.0", b: "1.255.255.255", want: 1},
		{name: "zero vs max", a: "0.0.0.0", b: "255.255.255.255", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := MustParse4(tt.a), MustParse4(tt.b)
			assert.Equal(t, tt.want, a.Compare(b))
			assert.Equal(t, tt.want < 0, a.Less(b))
		})
	}
}

func TestAddr4Step(t *testing.T) {
	tests := []struct {
		name string
		ops  func(a Addr4) Addr4
		in   string
		want string
	}{
		{name: "next", in: "10.0.0.1", want: "10.0.0.2", ops: Addr4.Next},
		{name: "next octet carry", in: "10.0.0.255", want: "10.0.1.0", ops: Addr4.Next},
		{name: "next wraps", in: "255.255.255.255", want: "0.0.0.0", ops: Addr4.Next},
		{name: "prev", in: "10.0.0.2", want: "10.0.0.1", ops: Addr4.Prev},
		{name: "prev octet borrow", in: "10.0.1.0", want: "10.0.0.255", ops: Addr4.Prev},
		{name: "prev wraps", in: "0.0.0.0", want: "255.255.255.255", ops: Addr4.Prev},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, MustParse4(tt.want), tt.ops(MustParse4(tt.in)))
		})
	}
}

func TestAddr4AddSub(t *testing.T) {
	tests := []struct {
		name string
		in   string
		add  uint64
		sub  uint64
		want string
	}{
		{name: "add zero", in: "10.0.0.1", add: 0, want: "10.0.0.1"},
		{name: "add across octet", in: "10.0.0.0", add: 256, want: "10.0.1.0"},
		{name: "add wraps", in: "255.255.255.255", add: 1, want: "0.0.0.0"},
		{name: "add full cycle", in: "10.0.0.1", add: 1 << 32, want: "10.0.0.1"},
		{name: "sub across octet", in: "10.0.1.0", sub: 1, want: "10.0.0.255"},
		{name: "sub wraps", in: "0.0.0.5", sub: 10, want: "255.255.255.251"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := MustParse4(tt.in)
			if tt.sub != 0 {
				assert.Equal(t, MustParse4(tt.want), a.Sub(tt.sub))
				return
			}
			assert.Equal(t, MustParse4(tt.want), a.Add(tt.add))
		})
	}

	// Add 与 Sub 互逆
	a := MustParse4("192.168.1.1")
	assert.Equal(t, a, a.Add(12345).Sub(12345))
}

func TestAddr4Bitwise(t *testing.T) {
	addr := MustParse4("192.168.1.17")
	mask := MustParse4("255.255.255.0")

	network := addr.And(mask)
	assert.Equal(t, MustParse4("192.168.1.0"), network)

	hostmask := mask.Not()
	assert.Equal(t, MustParse4("0.0.0.255"), hostmask)

	broadcast := network.Or(hostmask)
	assert.Equal(t, MustParse4("192.168.1.255"), broadcast)
}

// Addr4 可直接比较，可用作 map key。
func TestAddr4Comparable(t *testing.T) {
	seen := map[Addr4]int{
		MustParse4("10.0.0.1"): 1,
		MustParse4("10.0.0.2"): 2,
	}
	assert.Equal(t, 1, seen[Addr4FromUint32(0x0A000001)])
	assert.True(t, MustParse4("10.0.0.1") == Addr4From4([4]byte{10, 0, 0, 1}))
}
