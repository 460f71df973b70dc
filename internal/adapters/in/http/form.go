package http

import (
	"net/url"

	"moving/internal/core/domain/model/draft"
)

// checkboxMarker prefixes a hidden field rendered next to a checkbox so an
// unticked box is told apart from a screen that has no such box.
const checkboxMarker = "_"

// decodeForm maps the posted fields onto draft.Form. Only fields present in
// the submission are set.
func decodeForm(values url.Values) draft.Form {
	var f draft.Form

	f.OldPrefectureID = field(values, "oldPrefectureId")
	f.OldAddress = field(values, "oldAddress")
	f.NewPrefectureID = field(values, "newPrefectureId")
	f.NewAddress = field(values, "newAddress")
	f.MovingDate = field(values, "movingDate")

	f.Box = field(values, "box")
	f.Bed = field(values, "bed")
	f.Bicycle = field(values, "bicycle")
	f.WashingMachine = field(values, "washingMachine")

	f.WashingMachineInstallation = checkbox(values, "washingMachineInstallation")

	f.CustomerName = field(values, "customerName")
	f.CustomerKana = field(values, "customerKana")
	f.Tel = field(values, "tel")
	f.Email = field(values, "email")

	return f
}

// actions lists every submitted parameter name. The wizard picks the action
// among them.
func actions(values url.Values) []string {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	return names
}

func field(values url.Values, name string) *string {
	if !values.Has(name) {
		return nil
	}
	v := values.Get(name)
	return &v
}

func checkbox(values url.Values, name string) *bool {
	switch {
	case values.Has(name):
		v := values.Get(name) != "false"
		return &v
	case values.Has(checkboxMarker + name):
		v := false
		return &v
	default:
		return nil
	}
}
