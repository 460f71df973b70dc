package commands

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"

	"moving/internal/core/domain/model/draft"
	"moving/internal/core/domain/model/kernel"
	"moving/internal/pkg/errs"
	"moving/internal/pkg/guard"
)

var ErrRegisterOrderCommandIsNotConstructed = errors.New(
	"RegisterOrderCommand must be created via NewRegisterOrderCommand constructor",
)

// RegisterOrderCommand asks for a confirmed estimate to be stored as an order.
//
// Example:
//
//	details, _ := draft.Complete(session.Draft)
//	cmd, err := NewRegisterOrderCommand(session.Token, details, quote)
//	if err != nil {
//	    return err
//	}
//	orderID, err := handler.Handle(ctx, cmd)
type RegisterOrderCommand struct { //nolint:recvcheck //using for validation
	sessionToken kernel.UUID
	details      draft.Details
	price        kernel.Price

	guard guard.ConstructorGuard
}

// NewRegisterOrderCommand validates the session token and the quoted price.
// Details are expected to come from draft.Complete.
func NewRegisterOrderCommand(
	sessionToken kernel.UUID,
	details draft.Details,
	price kernel.Price,
) (RegisterOrderCommand, error) {
	cmd := RegisterOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setSessionToken(sessionToken),
		cmd.setDetails(details),
		cmd.setPrice(price),
	); err != nil {
		return RegisterOrderCommand{}, err
	}

	return cmd, nil
}

func (c RegisterOrderCommand) Validate() error {
	return c.guard.Validate(ErrRegisterOrderCommandIsNotConstructed)
}

func (c RegisterOrderCommand) SessionToken() kernel.UUID {
	return c.sessionToken
}

func (c RegisterOrderCommand) Details() draft.Details {
	return c.details
}

func (c RegisterOrderCommand) Price() kernel.Price {
	return c.price
}

// IdempotencyKey identifies this registration request. Two submissions from
// the same session with the same details produce the same key, so a replayed
// "complete" post registers at most one order.
func (c RegisterOrderCommand) IdempotencyKey() string {
	d := c.details
	parts := []string{
		c.sessionToken.String(),
		d.Contact.Name,
		d.Contact.Kana,
		d.Contact.Tel,
		strings.ToLower(d.Contact.Email),
		strconv.Itoa(int(d.From)),
		d.FromAddress,
		strconv.Itoa(int(d.To)),
		d.ToAddress,
		d.MovingDate.Format(draft.DateLayout),
		strconv.Itoa(d.Cargo.Box),
		strconv.Itoa(d.Cargo.Bed),
		strconv.Itoa(d.Cargo.Bicycle),
		strconv.Itoa(d.Cargo.WashingMachine),
		strconv.FormatBool(d.WashingMachineInstallation),
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x1f")))
	return hex.EncodeToString(sum[:])
}

func (c *RegisterOrderCommand) setSessionToken(token kernel.UUID) error {
	if err := token.Validate(); err != nil {
		return err
	}
	c.sessionToken = token
	return nil
}

func (c *RegisterOrderCommand) setDetails(d draft.Details) error {
	if d.MovingDate.IsZero() || d.Contact.Name == "" {
		return errs.NewValueIsRequiredError("details")
	}
	c.details = d
	return nil
}

func (c *RegisterOrderCommand) setPrice(p kernel.Price) error {
	if err := p.Validate(); err != nil {
		return err
	}
	c.price = p
	return nil
}
