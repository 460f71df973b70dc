package draft

// Move is the part of the request entered on the input screen.
type Move struct {
	OldPrefectureID string `form:"oldPrefectureId" validate:"required,number"`
	OldAddress      string `form:"oldAddress" validate:"required,max=100"`
	NewPrefectureID string `form:"newPrefectureId" validate:"required,number"`
	NewAddress      string `form:"newAddress" validate:"required,max=100"`
	MovingDate      string `form:"movingDate" validate:"required,datetime=2006-01-02,notpast"`

	Box            string `form:"box" validate:"omitempty,number,max=3"`
	Bed            string `form:"bed" validate:"omitempty,number,max=3"`
	Bicycle        string `form:"bicycle" validate:"omitempty,number,max=3"`
	WashingMachine string `form:"washingMachine" validate:"omitempty,number,max=3"`

	WashingMachineInstallation bool `form:"washingMachineInstallation"`
}

// Customer is the personal-information block entered on the personal screen.
type Customer struct {
	Name  string `form:"customerName" validate:"required,max=50"`
	Kana  string `form:"customerKana" validate:"required,max=50"`
	Tel   string `form:"tel" validate:"required,number,min=10,max=11"`
	Email string `form:"email" validate:"required,email,max=100"`
}

// Draft accumulates one customer's request across the wizard screens.
// It has no identity until it is registered as an order.
type Draft struct {
	Move     Move
	Customer Customer
}
