package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rajeshaligeti/hope-health/internal/domain"
)

const (
	fieldWeight = iota
	fieldHeight
	fieldCount
)

type bmiForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
	units  domain.UnitSystem

	busy    bool
	result  *domain.EvaluationRecord
	savedID string
	err     error
}

func newBMIForm(units domain.UnitSystem) bmiForm {
	f := bmiForm{units: units}
	for i := range f.inputs {
		ti := textinput.New()
		ti.CharLimit = 8
		ti.Width = 12
		f.inputs[i] = ti
	}
	f.applyUnits()
	f.inputs[fieldWeight].Focus()
	return f
}

func (f *bmiForm) applyUnits() {
	if !f.units.Valid() {
		f.units = domain.Metric
	}
	if f.units == domain.Imperial {
		f.inputs[fieldWeight].Placeholder = "150"
		f.inputs[fieldHeight].Placeholder = "65"
	} else {
		f.inputs[fieldWeight].Placeholder = "70"
		f.inputs[fieldHeight].Placeholder = "175"
	}
	f.inputs[fieldWeight].Prompt = "Weight (" + f.units.WeightUnit() + "): "
	f.inputs[fieldHeight].Prompt = "Height (" + f.units.HeightUnit() + "): "
}

func (f *bmiForm) toggleUnits() {
	if f.units == domain.Imperial {
		f.units = domain.Metric
	} else {
		f.units = domain.Imperial
	}
	f.applyUnits()
	f.result = nil
	f.savedID = ""
	f.err = nil
}

func (f *bmiForm) setFocus(i int) tea.Cmd {
	f.focus = (i + fieldCount) % fieldCount
	var cmd tea.Cmd
	for j := range f.inputs {
		if j == f.focus {
			cmd = f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
	return cmd
}

func (f *bmiForm) reset() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.result = nil
	f.savedID = ""
	f.err = nil
	f.busy = false
	return f.setFocus(fieldWeight)
}

// measurement parses the current input values.
func (f bmiForm) measurement() (domain.Measurement, error) {
	return domain.ParseMeasurement(
		f.inputs[fieldWeight].Value(),
		f.inputs[fieldHeight].Value(),
		string(f.units),
		domain.Metric,
	)
}

func (f *bmiForm) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}
