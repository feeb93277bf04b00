package validate

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestURL(t *testing.T) {
	t.Run("valid with path", func(t *testing.T) {
		for _, raw := range []string{
			"https://test.com/valid_path/",
			"https://www.test.com/valid_path/",
			"http://localhost:8000/callbacks/stk",
		} {
			require.True(t, URL(raw), raw)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, raw := range []string{
			"https://invalid.com",
			"invalid.com",
			"invalid",
			"invalid.com/with_path",
			"",
		} {
			require.False(t, URL(raw), raw)
		}
	})
}

func TestSafaricomNumberValidRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(999999))
	subscriber := func() int {
		return rng.Intn(900000) + 100000
	}

	var prefixes []int
	for i := 700; i <= 708; i++ {
		prefixes = append(prefixes, i)
	}
	for i := 710; i <= 729; i++ {
		prefixes = append(prefixes, i)
	}
	for i := 740; i <= 741; i++ {
		prefixes = append(prefixes, i)
	}
	for i := 757; i <= 759; i++ {
		prefixes = append(prefixes, i)
	}
	for i := 790; i <= 799; i++ {
		prefixes = append(prefixes, i)
	}

	for _, p := range prefixes {
		number := fmt.Sprintf("0%d%d", p, subscriber())
		got, ok := SafaricomNumber(number)
		require.True(t, ok, number)
		require.Equal(t, "254"+number[1:], got, number)
	}
}

func TestSafaricomNumberPrefixForms(t *testing.T) {
	for _, raw := range []string{
		"0721100100",
		"254721100100",
		"+254721100100",
		"721100100",
	} {
		got, ok := SafaricomNumber(raw)
		require.True(t, ok, raw)
		require.Equal(t, "254721100100", got, raw)
	}
}

func TestSafaricomNumberInvalid(t *testing.T) {
	for _, raw := range []string{
		"0731100100",
		"0709123456",
		"0748123456",
		"0756123456",
		"0781234567",
		"0811234567",
		"25472110010",
		"2547211001000",
		"+2540721100100",
		"07211001ab",
		"12345",
		"",
	} {
		got, ok := SafaricomNumber(raw)
		require.False(t, ok, raw)
		require.Empty(t, got, raw)
	}
}
