package cli

import (
	"github.com/spf13/pflag"

	"github.com/jaminalder/tttai/internal/domain"
)

// markValue is a pflag.Value accepting x or o.
type markValue domain.Cell

var _ pflag.Value = (*markValue)(nil)

func newMarkValue(def domain.Cell, p *domain.Cell) *markValue {
	*p = def
	return (*markValue)(p)
}

func (m *markValue) String() string { return domain.Cell(*m).String() }

func (m *markValue) Set(s string) error {
	c, err := domain.ParseMark(s)
	if err != nil {
		return err
	}
	*m = markValue(c)
	return nil
}

func (m *markValue) Type() string { return "mark" }

// markFlag registers a --mark flag on fs.
func markFlag(fs *pflag.FlagSet, p *domain.Cell, def domain.Cell, usage string) {
	fs.VarP(newMarkValue(def, p), "mark", "m", usage)
}
