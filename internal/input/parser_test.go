package input

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParserFor(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Parser
	}{
		{
			"plain names",
			"Lightning Bolt\nBlack Lotus\n",
			PlainParser{},
		},
		{
			"set notation",
			"Lightning Bolt (LEA)\nBlack Lotus (LEA) 232\n",
			SetNotationParser{},
		},
		{
			"set notation with collector numbers",
			"Opt (ZNR) 59\nShock (M21) 159\nNegate (M21) 52\n",
			SetNotationParser{},
		},
		{
			"mostly plain wins",
			"Lightning Bolt\nBlack Lotus\nOpt (ZNR) 59\n",
			PlainParser{},
		},
		{
			"empty file",
			"",
			PlainParser{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.IsType(t, tt.want, ParserFor([]byte(tt.content)))
		})
	}
}

func TestPlainParser(t *testing.T) {
	names, err := PlainParser{}.ParseCards(strings.NewReader("  Lightning Bolt \n\nBlack Lotus\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Lightning Bolt", "Black Lotus"}, names)
}

func TestSetNotationParser(t *testing.T) {
	content := strings.Join([]string{
		"Lightning Bolt (LEA)",
		"Black Lotus (LEA) 232",
		"Opt (ZNR) 59",
		"Just A Plain Name",
	}, "\n")

	names, err := SetNotationParser{}.ParseCards(strings.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Lightning Bolt",
		"Black Lotus",
		"Opt",
		"Just A Plain Name",
	}, names)
}
