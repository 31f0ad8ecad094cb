package natsort

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringsOrdersDigitRunsNumerically(t *testing.T) {
	names := []string{"img2.png", "img10.png", "img1.png"}
	Strings(names)
	assert.Equal(t, []string{"img1.png", "img2.png", "img10.png"}, names)
}

func TestStringsMixedPrefixes(t *testing.T) {
	names := []string{"b1", "a10", "a2", "10", "2", "a"}
	Strings(names)
	assert.Equal(t, []string{"2", "10", "a", "a2", "a10", "b1"}, names)
}

func TestKeyAlternatesTextAndDigits(t *testing.T) {
	assert.Equal(t, []Token{
		{Text: "scan"},
		{Text: "7", Numeric: true},
		{Text: "_v"},
		{Text: "12", Numeric: true},
		{Text: ".jpg"},
	}, Key("scan007_v12.jpg"))

	assert.Equal(t, []Token{{Text: ""}, {Text: "3", Numeric: true}, {Text: ""}}, Key("3"))
}

func TestCompareLongDigitRuns(t *testing.T) {
	assert.Equal(t, -1, Compare("f99999999999999999999", "f100000000000000000000"))
	assert.Equal(t, 1, Compare("f100000000000000000000", "f99999999999999999999"))
}

func TestCompareIsTotalForEqualKeys(t *testing.T) {
	assert.Equal(t, 0, Compare("img1", "img1"))
	assert.NotEqual(t, 0, Compare("img01", "img1"))
	assert.Equal(t, -Compare("img01", "img1"), Compare("img1", "img01"))
}

func TestStringsIsDeterministic(t *testing.T) {
	a := []string{"p10", "p01", "p1", "p2", "p001"}
	b := []string{"p2", "p001", "p1", "p10", "p01"}
	Strings(a)
	Strings(b)
	assert.Equal(t, a, b)
	assert.Equal(t, "p10", a[len(a)-1])
}
