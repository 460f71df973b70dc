package controller_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"moving/internal/core/application/controller"
	"moving/internal/core/application/usecases/commands"
	"moving/internal/core/application/usecases/queries"
	"moving/internal/core/domain/model/draft"
	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/model/region"
	"moving/internal/core/domain/model/wizard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRegionDirectory struct{ mock.Mock }

func (m *MockRegionDirectory) ListAll(ctx context.Context) (region.List, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).(region.List)
	return list, args.Error(1)
}

type MockPricingEngine struct{ mock.Mock }

func (m *MockPricingEngine) Handle(ctx context.Context, q queries.EstimatePriceQuery) (kernel.Price, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(kernel.Price), args.Error(1)
}

type MockOrderRegistry struct{ mock.Mock }

func (m *MockOrderRegistry) Handle(ctx context.Context, cmd commands.RegisterOrderCommand) (kernel.UUID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type recordingObserver struct {
	mu          sync.Mutex
	transitions []string
	priced      int
	registered  int
}

func (o *recordingObserver) Transition(e wizard.Endpoint, i wizard.Intent, to wizard.Screen, rejected bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.transitions = append(o.transitions, fmt.Sprintf("%s/%s->%s rejected=%t", e, i, to, rejected))
}

func (o *recordingObserver) Priced(time.Duration, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.priced++
}

func (o *recordingObserver) Registered(error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.registered++
}

var today = time.Date(2026, time.October, 15, 9, 30, 0, 0, time.UTC)

type fixture struct {
	regions  *MockRegionDirectory
	pricing  *MockPricingEngine
	registry *MockOrderRegistry
	observer *recordingObserver
	wizard   *controller.Wizard
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		regions:  new(MockRegionDirectory),
		pricing:  new(MockPricingEngine),
		registry: new(MockOrderRegistry),
		observer: new(recordingObserver),
	}
	f.wizard = controller.NewWizard(f.regions, f.pricing, f.registry,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		controller.WithObserver(f.observer),
		controller.WithClock(func() time.Time { return today }),
	)
	t.Cleanup(func() {
		f.regions.AssertExpectations(t)
		f.pricing.AssertExpectations(t)
		f.registry.AssertExpectations(t)
	})
	return f
}

func prefectures(t *testing.T) region.List {
	t.Helper()
	names := map[region.ID]string{13: "東京都", 27: "大阪府"}
	list := make(region.List, 0, region.MaxID)
	for id := region.MinID; id <= region.MaxID; id++ {
		name, ok := names[id]
		if !ok {
			name = fmt.Sprintf("prefecture %d", id)
		}
		r, err := region.NewRegion(id, name)
		require.NoError(t, err)
		list = append(list, r)
	}
	return list
}

func (f *fixture) expectRegions(t *testing.T) {
	f.regions.On("ListAll", mock.Anything).Return(prefectures(t), nil).Once()
}

func (f *fixture) expectPrice(yen int) {
	f.pricing.On("Handle", mock.Anything, mock.AnythingOfType("queries.EstimatePriceQuery")).
		Return(kernel.MustNewPrice(yen), nil).Once()
}

func str(s string) *string { return &s }

// moveForm is the input screen of a Tokyo to Osaka move.
func moveForm() draft.Form {
	return draft.Form{
		OldPrefectureID: str("13"),
		OldAddress:      str("千代田区千代田1-1"),
		NewPrefectureID: str("27"),
		NewAddress:      str("大阪市北区梅田1-1"),
		MovingDate:      str("2026-11-03"),
		Box:             str("20"),
		Bed:             str("1"),
		Bicycle:         str(""),
		WashingMachine:  str("1"),
	}
}

func personalForm() draft.Form {
	return draft.Form{
		CustomerName: str("山田太郎"),
		CustomerKana: str("ヤマダタロウ"),
		Tel:          str("0312345678"),
		Email:        str("taro@example.com"),
	}
}

func sessionWith(forms ...draft.Form) controller.Session {
	s := controller.NewSession()
	for _, f := range forms {
		s.Draft = f.ApplyTo(s.Draft)
	}
	return s
}

func expectedDetails() draft.Details {
	return draft.Details{
		Contact:     draft.Contact{Name: "山田太郎", Kana: "ヤマダタロウ", Tel: "0312345678", Email: "taro@example.com"},
		From:        13,
		FromAddress: "千代田区千代田1-1",
		To:          27,
		ToAddress:   "大阪市北区梅田1-1",
		MovingDate:  time.Date(2026, time.November, 3, 0, 0, 0, 0, time.UTC),
		Cargo:       draft.Cargo{Box: 20, Bed: 1, WashingMachine: 1},
	}
}

func TestEnter_NewSession_StartsFromEmptyDraft(t *testing.T) {
	f := newFixture(t)
	f.expectRegions(t)

	res, err := f.wizard.Enter(t.Context(), controller.NewSession(), wizard.Input)

	require.NoError(t, err)
	assert.Equal(t, wizard.Input, res.View.Screen)
	assert.Equal(t, draft.Draft{}, res.View.Draft)
	assert.Len(t, res.View.Regions, int(region.MaxID))
	assert.False(t, res.Discard)
}

func TestEnter_DetailScreen_KeepsSessionDraft(t *testing.T) {
	f := newFixture(t)
	f.expectRegions(t)
	s := sessionWith(moveForm())

	res, err := f.wizard.Enter(t.Context(), s, wizard.InputDetail)

	require.NoError(t, err)
	assert.Equal(t, wizard.InputDetail, res.View.Screen)
	assert.Equal(t, s.Draft, res.View.Draft)
}

func TestEnter_RejectsNonInputScreen(t *testing.T) {
	f := newFixture(t)

	_, err := f.wizard.Enter(t.Context(), controller.NewSession(), wizard.Confirm)

	require.Error(t, err)
}

func TestEnter_LookupFailure_IsFatal(t *testing.T) {
	f := newFixture(t)
	f.regions.On("ListAll", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	_, err := f.wizard.Enter(t.Context(), controller.NewSession(), wizard.Input)

	require.ErrorIs(t, err, controller.ErrLookupUnavailable)
}

func TestCalculate_TokyoToOsaka_StaysOnPersonalWithPrice(t *testing.T) {
	f := newFixture(t)
	f.expectRegions(t)
	f.expectPrice(50000)
	s := sessionWith(moveForm())

	res, err := f.wizard.Submit(t.Context(), s, wizard.EndpointPersonal, []string{"calculation"}, personalForm())

	require.NoError(t, err)
	assert.Equal(t, wizard.Personal, res.View.Screen)
	require.NotNil(t, res.View.Price)
	assert.Equal(t, 50000, res.View.Price.Yen())
	assert.False(t, res.View.Errors.HasErrors())
	assert.Equal(t, "13", res.View.Draft.Move.OldPrefectureID)
	assert.Equal(t, "27", res.View.Draft.Move.NewPrefectureID)
	assert.Equal(t, "山田太郎", res.View.Draft.Customer.Name)
	require.NotNil(t, res.Session.Quote)
	assert.Equal(t, 50000, res.Session.Quote.Yen())
	f.pricing.AssertNumberOfCalls(t, "Handle", 1)
}

func TestCalculate_PricesTheSubmittedDraft(t *testing.T) {
	f := newFixture(t)
	f.expectRegions(t)
	f.pricing.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.EstimatePriceQuery) bool {
		return q.Details() == expectedDetails()
	})).Return(kernel.MustNewPrice(50000), nil).Once()

	_, err := f.wizard.Submit(t.Context(), sessionWith(moveForm()), wizard.EndpointPersonal,
		[]string{"calculation"}, personalForm())

	require.NoError(t, err)
}

func TestConfirmFromPersonal_ValidDraft_PricesOnceAndShowsConfirm(t *testing.T) {
	f := newFixture(t)
	f.expectRegions(t)
	f.expectPrice(61000)

	res, err := f.wizard.Submit(t.Context(), sessionWith(moveForm()), wizard.EndpointPersonal,
		[]string{"confirm"}, personalForm())

	require.NoError(t, err)
	assert.Equal(t, wizard.Confirm, res.View.Screen)
	require.NotNil(t, res.View.Price)
	assert.Equal(t, 61000, res.View.Price.Yen())
	assert.Len(t, res.View.Regions, int(region.MaxID))
	f.pricing.AssertNumberOfCalls(t, "Handle", 1)
}

func TestPersonalGate_MissingField_RedisplaysPersonalWithoutDataLoss(t *testing.T) {
	for _, action := range []string{"calculation", "confirm"} {
		t.Run(action, func(t *testing.T) {
			f := newFixture(t)
			f.expectRegions(t)
			s := sessionWith(moveForm())
			form := personalForm()
			form.CustomerName = str("")

			res, err := f.wizard.Submit(t.Context(), s, wizard.EndpointPersonal, []string{action}, form)

			require.NoError(t, err)
			assert.Equal(t, wizard.Personal, res.View.Screen)
			assert.True(t, res.View.Errors.Has("customerName"))
			assert.Nil(t, res.View.Price)
			assert.Equal(t, s.Draft.Move, res.Session.Draft.Move, "previously entered fields are kept")
			assert.Equal(t, "ヤマダタロウ", res.Session.Draft.Customer.Kana, "submitted fields are kept")
			assert.Len(t, res.View.Regions, int(region.MaxID))
			f.pricing.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		})
	}
}

func TestConfirmFromInput_InvalidMove_RedisplaysInput(t *testing.T) {
	f := newFixture(t)
	f.expectRegions(t)
	form := moveForm()
	form.MovingDate = str("2026-10-14")
	form.NewPrefectureID = str("99")

	res, err := f.wizard.Submit(t.Context(), controller.NewSession(), wizard.EndpointSubmit, []string{"confirm"}, form)

	require.NoError(t, err)
	assert.Equal(t, wizard.Input, res.View.Screen)
	assert.True(t, res.View.Errors.Has("movingDate"))
	assert.True(t, res.View.Errors.Has("newPrefectureId"))
	assert.False(t, res.View.Errors.Has("customerName"), "personal block is not gated from the input screen")
	assert.Equal(t, "2026-10-14", res.Session.Draft.Move.MovingDate)
}

func TestConfirmFromInput_PersonalBlockMissing_ContinuesToPersonal(t *testing.T) {
	f := newFixture(t)
	f.expectRegions(t)

	res, err := f.wizard.Submit(t.Context(), controller.NewSession(), wizard.EndpointSubmit,
		[]string{"confirm"}, moveForm())

	require.NoError(t, err)
	assert.Equal(t, wizard.Personal, res.View.Screen)
	assert.False(t, res.View.Errors.HasErrors())
	assert.Nil(t, res.View.Price)
	assert.Equal(t, "千代田区千代田1-1", res.Session.Draft.Move.OldAddress)
	f.pricing.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestConfirmFromInput_CompleteDraft_PricesAndShowsConfirm(t *testing.T) {
	f := newFixture(t)
	f.expectRegions(t)
	f.expectPrice(50000)

	res, err := f.wizard.Submit(t.Context(), sessionWith(personalForm()), wizard.EndpointSubmit,
		[]string{"confirm"}, moveForm())

	require.NoError(t, err)
	assert.Equal(t, wizard.Confirm, res.View.Screen)
	require.NotNil(t, res.View.Price)
	assert.Equal(t, 50000, res.View.Price.Yen())
}

func TestPricingFailure_IsFatal(t *testing.T) {
	f := newFixture(t)
	f.expectRegions(t)
	f.pricing.On("Handle", mock.Anything, mock.Anything).
		Return(kernel.Price{}, errors.New("route is not priced")).Once()

	_, err := f.wizard.Submit(t.Context(), sessionWith(moveForm()), wizard.EndpointPersonal,
		[]string{"calculation"}, personalForm())

	require.ErrorIs(t, err, controller.ErrPricingFailure)
}

func TestPricingFailure_ZeroValuePriceIsRejected(t *testing.T) {
	f := newFixture(t)
	f.expectRegions(t)
	f.pricing.On("Handle", mock.Anything, mock.Anything).Return(kernel.Price{}, nil).Once()

	_, err := f.wizard.Submit(t.Context(), sessionWith(moveForm()), wizard.EndpointPersonal,
		[]string{"calculation"}, personalForm())

	require.ErrorIs(t, err, controller.ErrPricingFailure)
}

func TestBackToInput_ShowsInputWithDraft(t *testing.T) {
	f := newFixture(t)
	f.expectRegions(t)
	s := sessionWith(moveForm())

	res, err := f.wizard.Submit(t.Context(), s, wizard.EndpointPersonal, []string{"backToInput"}, draft.Form{})

	require.NoError(t, err)
	assert.Equal(t, wizard.Input, res.View.Screen)
	assert.Equal(t, s.Draft, res.View.Draft)
	assert.Len(t, res.View.Regions, int(region.MaxID))
}

func TestBackToConfirm_ReattachesHeldQuoteWithoutPricing(t *testing.T) {
	f := newFixture(t)
	f.expectRegions(t)
	s := sessionWith(moveForm(), personalForm())
	quote := kernel.MustNewPrice(50000)
	s.Quote = &quote

	res, err := f.wizard.Submit(t.Context(), s, wizard.EndpointOrder, []string{"backToConfirm"}, draft.Form{})

	require.NoError(t, err)
	assert.Equal(t, wizard.Confirm, res.View.Screen)
	require.NotNil(t, res.View.Price)
	assert.Equal(t, 50000, res.View.Price.Yen())
	f.pricing.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestBackToConfirm_WithoutQuote_PricesAgain(t *testing.T) {
	f := newFixture(t)
	f.expectRegions(t)
	f.expectPrice(52000)

	res, err := f.wizard.Submit(t.Context(), sessionWith(moveForm(), personalForm()), wizard.EndpointOrder,
		[]string{"backToConfirm"}, draft.Form{})

	require.NoError(t, err)
	assert.Equal(t, wizard.Confirm, res.View.Screen)
	assert.Equal(t, 52000, res.View.Price.Yen())
}

func TestChangedDraft_DropsHeldQuote(t *testing.T) {
	f := newFixture(t)
	f.expectRegions(t)
	s := sessionWith(moveForm(), personalForm())
	quote := kernel.MustNewPrice(50000)
	s.Quote = &quote
	form := moveForm()
	form.Box = str("40")

	res, err := f.wizard.Submit(t.Context(), s, wizard.EndpointPersonal, []string{"backToInput"}, form)

	require.NoError(t, err)
	assert.Nil(t, res.Session.Quote)
	assert.Equal(t, "40", res.Session.Draft.Move.Box)
}

func TestComplete_MissingDestination_RedisplaysConfirmWithoutRegistering(t *testing.T) {
	f := newFixture(t)
	f.expectRegions(t)
	s := sessionWith(moveForm(), personalForm())
	s.Draft.Move.NewPrefectureID = ""
	quote := kernel.MustNewPrice(50000)
	s.Quote = &quote

	res, err := f.wizard.Submit(t.Context(), s, wizard.EndpointOrder, []string{"complete"}, draft.Form{})

	require.NoError(t, err)
	assert.Equal(t, wizard.Confirm, res.View.Screen)
	assert.True(t, res.View.Errors.Has("newPrefectureId"))
	assert.False(t, res.Discard)
	assert.Equal(t, s.Draft, res.Session.Draft)
	f.registry.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestComplete_ValidDraft_RegistersOnceAndDiscardsSession(t *testing.T) {
	f := newFixture(t)
	f.expectRegions(t)
	s := sessionWith(moveForm(), personalForm())
	quote := kernel.MustNewPrice(50000)
	s.Quote = &quote
	orderID := kernel.NewUUID()

	f.registry.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RegisterOrderCommand) bool {
		return cmd.Details() == expectedDetails() &&
			cmd.Price().Yen() == 50000 &&
			cmd.SessionToken().IsEqual(s.Token)
	})).Return(orderID, nil).Once()

	res, err := f.wizard.Submit(t.Context(), s, wizard.EndpointOrder, []string{"complete"}, draft.Form{})

	require.NoError(t, err)
	assert.Equal(t, wizard.Complete, res.View.Screen)
	assert.True(t, res.View.OrderID.IsEqual(orderID))
	assert.True(t, res.Discard)
	assert.Equal(t, draft.Draft{}, res.Session.Draft)
	assert.False(t, res.Session.Token.IsEqual(s.Token))
	f.registry.AssertNumberOfCalls(t, "Handle", 1)
	f.pricing.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestComplete_WithoutQuote_PricesBeforeRegistering(t *testing.T) {
	f := newFixture(t)
	f.expectRegions(t)
	f.expectPrice(48000)
	f.registry.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RegisterOrderCommand) bool {
		return cmd.Price().Yen() == 48000
	})).Return(kernel.NewUUID(), nil).Once()

	res, err := f.wizard.Submit(t.Context(), sessionWith(moveForm(), personalForm()), wizard.EndpointOrder,
		[]string{"complete"}, draft.Form{})

	require.NoError(t, err)
	assert.Equal(t, wizard.Complete, res.View.Screen)
}

func TestComplete_RegistrationFailure_StaysOnConfirmAndKeepsDraft(t *testing.T) {
	f := newFixture(t)
	f.expectRegions(t)
	s := sessionWith(moveForm(), personalForm())
	quote := kernel.MustNewPrice(50000)
	s.Quote = &quote
	f.registry.On("Handle", mock.Anything, mock.Anything).Return(kernel.UUID{}, errors.New("db down")).Once()

	res, err := f.wizard.Submit(t.Context(), s, wizard.EndpointOrder, []string{"complete"}, draft.Form{})

	require.NoError(t, err)
	assert.Equal(t, wizard.Confirm, res.View.Screen)
	assert.Equal(t, controller.RegistrationFailedNotice, res.View.Notice)
	assert.False(t, res.Discard)
	assert.Equal(t, s.Draft, res.Session.Draft)
	require.NotNil(t, res.View.Price)
	assert.Equal(t, 50000, res.View.Price.Yen())
}

func TestBackToTop_DiscardsDraftFromEveryEndpoint(t *testing.T) {
	for _, endpoint := range []wizard.Endpoint{wizard.EndpointSubmit, wizard.EndpointPersonal, wizard.EndpointOrder} {
		t.Run(string(endpoint), func(t *testing.T) {
			f := newFixture(t)
			s := sessionWith(moveForm(), personalForm())

			res, err := f.wizard.Submit(t.Context(), s, endpoint, []string{"backToTop"}, moveForm())

			require.NoError(t, err)
			assert.Equal(t, wizard.Top, res.View.Screen)
			assert.True(t, res.Discard)

			f.expectRegions(t)
			again, err := f.wizard.Enter(t.Context(), res.Session, wizard.Input)
			require.NoError(t, err)
			assert.Equal(t, draft.Draft{}, again.View.Draft)
		})
	}
}

func TestUnrecognizedAction_RedisplaysOriginWithoutSideEffects(t *testing.T) {
	cases := []struct {
		name     string
		endpoint wizard.Endpoint
		actions  []string
		origin   wizard.Screen
	}{
		{"no action", wizard.EndpointSubmit, nil, wizard.Input},
		{"unknown action", wizard.EndpointPersonal, []string{"customerName", "order"}, wizard.Personal},
		{"two actions", wizard.EndpointOrder, []string{"complete", "backToConfirm"}, wizard.Confirm},
		{"action of another screen", wizard.EndpointSubmit, []string{"calculation"}, wizard.Input},
		{"complete posted from personal", wizard.EndpointPersonal, []string{"complete"}, wizard.Personal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.expectRegions(t)
			s := sessionWith(moveForm())

			res, err := f.wizard.Submit(t.Context(), s, tc.endpoint, tc.actions, personalForm())

			require.NoError(t, err)
			assert.True(t, res.View.Rejected)
			assert.Equal(t, tc.origin, res.View.Screen)
			assert.Equal(t, s.Draft, res.Session.Draft, "rejected submissions do not touch the draft")
			f.pricing.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
			f.registry.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		})
	}
}

func TestObserver_SeesTransitionsAndCalls(t *testing.T) {
	f := newFixture(t)
	f.expectRegions(t)
	f.expectPrice(50000)

	_, err := f.wizard.Submit(t.Context(), sessionWith(moveForm()), wizard.EndpointPersonal,
		[]string{"calculation"}, personalForm())
	require.NoError(t, err)

	assert.Equal(t, []string{"personal/calculation->personal rejected=false"}, f.observer.transitions)
	assert.Equal(t, 1, f.observer.priced)
	assert.Zero(t, f.observer.registered)
}

func TestTop_KeepsSession(t *testing.T) {
	f := newFixture(t)
	s := sessionWith(moveForm())

	res := f.wizard.Top(s)

	assert.Equal(t, wizard.Top, res.View.Screen)
	assert.Equal(t, s, res.Session)
	assert.False(t, res.Discard)
}
