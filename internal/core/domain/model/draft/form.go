package draft

import "strings"

// Form carries the fields of one submitted screen. A nil field was not part of
// the submission and leaves the corresponding draft field untouched.
type Form struct {
	OldPrefectureID *string
	OldAddress      *string
	NewPrefectureID *string
	NewAddress      *string
	MovingDate      *string

	Box            *string
	Bed            *string
	Bicycle        *string
	WashingMachine *string

	WashingMachineInstallation *bool

	CustomerName *string
	CustomerKana *string
	Tel          *string
	Email        *string
}

// ApplyTo returns d with every present form field copied over it.
// Fields are only added or overwritten, never cleared by absence.
func (f Form) ApplyTo(d Draft) Draft {
	assign(&d.Move.OldPrefectureID, f.OldPrefectureID)
	assign(&d.Move.OldAddress, f.OldAddress)
	assign(&d.Move.NewPrefectureID, f.NewPrefectureID)
	assign(&d.Move.NewAddress, f.NewAddress)
	assign(&d.Move.MovingDate, f.MovingDate)

	assign(&d.Move.Box, f.Box)
	assign(&d.Move.Bed, f.Bed)
	assign(&d.Move.Bicycle, f.Bicycle)
	assign(&d.Move.WashingMachine, f.WashingMachine)

	if f.WashingMachineInstallation != nil {
		d.Move.WashingMachineInstallation = *f.WashingMachineInstallation
	}

	assign(&d.Customer.Name, f.CustomerName)
	assign(&d.Customer.Kana, f.CustomerKana)
	assign(&d.Customer.Tel, f.Tel)
	assign(&d.Customer.Email, f.Email)

	return d
}

// IsEmpty reports whether the submission carried no fields at all.
func (f Form) IsEmpty() bool {
	return f == Form{}
}

func assign(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}
