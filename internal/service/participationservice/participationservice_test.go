package participationservice

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/groupbuy/procurements/internal/domain"
	"github.com/groupbuy/procurements/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockProcurementRepo, *MockParticipantRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	procurementRepo := NewMockProcurementRepo(ctrl)
	participantRepo := NewMockParticipantRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(procurementRepo, participantRepo, txManager)
	defer ctrl.Finish()
	return service, procurementRepo, participantRepo, txManager
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		}).AnyTimes()
}

func activeProcurement() *domain.Procurement {
	return &domain.Procurement{ID: 1, Title: "Bulk coffee beans", Status: domain.StatusActive}
}

func TestJoin(t *testing.T) {
	service, procurementRepo, participantRepo, txManager := NewMock(t)
	passthroughTx(txManager)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "joins and recomputes amount",
			prepareMock: func() {
				procurementRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(activeProcurement(), nil)
				participantRepo.EXPECT().FindActive(gomock.Any(), 1, 42).Return(nil, nil)
				participantRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.Participant) (*domain.Participant, error) {
						assert.Equal(t, 1, p.ProcurementID)
						assert.Equal(t, 42, p.UserID)
						assert.Equal(t, 2.0, p.Quantity)
						assert.Equal(t, 37.0, p.Amount)
						created := *p
						created.ID = 5
						created.IsActive = true
						return &created, nil
					})
				procurementRepo.EXPECT().RecalculateCurrentAmount(gomock.Any(), 1).Return(37.0, nil)
			},
		},
		{
			name: "procurement not found",
			prepareMock: func() {
				procurementRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrProcurementNotFound,
		},
		{
			name: "procurement not active",
			prepareMock: func() {
				procurementRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).
					Return(&domain.Procurement{ID: 1, Status: domain.StatusDraft}, nil)
			},
			expectedError: ErrProcurementNotActive,
		},
		{
			name: "already joined",
			prepareMock: func() {
				procurementRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(activeProcurement(), nil)
				participantRepo.EXPECT().FindActive(gomock.Any(), 1, 42).
					Return(&domain.Participant{ID: 5, UserID: 42, IsActive: true}, nil)
			},
			expectedError: ErrAlreadyJoined,
		},
		{
			name: "lock error rolls back",
			prepareMock: func() {
				procurementRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(nil, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
		{
			name: "create error rolls back",
			prepareMock: func() {
				procurementRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(activeProcurement(), nil)
				participantRepo.EXPECT().FindActive(gomock.Any(), 1, 42).Return(nil, nil)
				participantRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
		{
			name: "recalculation error rolls back",
			prepareMock: func() {
				procurementRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(activeProcurement(), nil)
				participantRepo.EXPECT().FindActive(gomock.Any(), 1, 42).Return(nil, nil)
				participantRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(&domain.Participant{ID: 5}, nil)
				procurementRepo.EXPECT().RecalculateCurrentAmount(gomock.Any(), 1).
					Return(0.0, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			participant, err := service.Join(context.Background(), 1, 42, 2.0, 37.0, "evening pickup")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, participant)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, participant)
				assert.Equal(t, 5, participant.ID)
				assert.True(t, participant.IsActive)
			}
		})
	}
}

func TestLeave(t *testing.T) {
	service, procurementRepo, participantRepo, txManager := NewMock(t)
	passthroughTx(txManager)

	tests := []struct {
		name           string
		prepareMock    func()
		expectedAmount float64
		expectedError  error
	}{
		{
			name: "leaves and recomputes amount",
			prepareMock: func() {
				procurementRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(activeProcurement(), nil)
				participantRepo.EXPECT().Deactivate(gomock.Any(), 1, 42).Return(int64(1), nil)
				procurementRepo.EXPECT().RecalculateCurrentAmount(gomock.Any(), 1).Return(13.0, nil)
			},
			expectedAmount: 13.0,
		},
		{
			name: "procurement not found",
			prepareMock: func() {
				procurementRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrProcurementNotFound,
		},
		{
			name: "not joined",
			prepareMock: func() {
				procurementRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(activeProcurement(), nil)
				participantRepo.EXPECT().Deactivate(gomock.Any(), 1, 42).Return(int64(0), nil)
			},
			expectedError: ErrNotJoined,
		},
		{
			name: "deactivate error rolls back",
			prepareMock: func() {
				procurementRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(activeProcurement(), nil)
				participantRepo.EXPECT().Deactivate(gomock.Any(), 1, 42).Return(int64(0), errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
		{
			name: "recalculation error rolls back",
			prepareMock: func() {
				procurementRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(activeProcurement(), nil)
				participantRepo.EXPECT().Deactivate(gomock.Any(), 1, 42).Return(int64(1), nil)
				procurementRepo.EXPECT().RecalculateCurrentAmount(gomock.Any(), 1).
					Return(0.0, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			amount, err := service.Leave(context.Background(), 1, 42)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedAmount, amount)
			}
		})
	}
}

// fakeStore serializes joins the way the row lock does in Postgres: every
// transaction runs under one mutex, so concurrent Join calls observe each
// other's writes.
type fakeStore struct {
	mu           sync.Mutex
	procurement  domain.Procurement
	participants map[int]*domain.Participant
	nextID       int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		procurement:  domain.Procurement{ID: 1, Status: domain.StatusActive, TargetAmount: 100},
		participants: map[int]*domain.Participant{},
		nextID:       1,
	}
}

func (s *fakeStore) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx)
}

func (s *fakeStore) FindByIDForUpdate(_ context.Context, id int) (*domain.Procurement, error) {
	if id != s.procurement.ID {
		return nil, nil
	}
	p := s.procurement
	return &p, nil
}

func (s *fakeStore) RecalculateCurrentAmount(_ context.Context, _ int) (float64, error) {
	var total float64
	for _, p := range s.participants {
		if p.IsActive {
			total += p.Amount
		}
	}
	s.procurement.CurrentAmount = total
	return total, nil
}

func (s *fakeStore) Create(_ context.Context, participant *domain.Participant) (*domain.Participant, error) {
	created := *participant
	created.ID = s.nextID
	created.IsActive = true
	s.nextID++
	s.participants[created.UserID] = &created
	return &created, nil
}

func (s *fakeStore) FindActive(_ context.Context, _, userID int) (*domain.Participant, error) {
	p, ok := s.participants[userID]
	if !ok || !p.IsActive {
		return nil, nil
	}
	return p, nil
}

func (s *fakeStore) Deactivate(_ context.Context, _, userID int) (int64, error) {
	p, ok := s.participants[userID]
	if !ok || !p.IsActive {
		return 0, nil
	}
	p.IsActive = false
	return 1, nil
}

func TestJoinConcurrent(t *testing.T) {
	store := newFakeStore()
	service := New(store, store, store)

	const joiners = 50
	var wg sync.WaitGroup
	for i := 1; i <= joiners; i++ {
		wg.Add(1)
		go func(userID int) {
			defer wg.Done()
			_, err := service.Join(context.Background(), 1, userID, 1, 1, "")
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, float64(joiners), store.procurement.CurrentAmount)

	// Repeated joins by the same users are all rejected.
	for i := 1; i <= joiners; i++ {
		_, err := service.Join(context.Background(), 1, i, 1, 1, "")
		assert.ErrorIs(t, err, ErrAlreadyJoined)
	}
	assert.Equal(t, float64(joiners), store.procurement.CurrentAmount)

	// Everyone leaving brings the amount back to zero.
	for i := 1; i <= joiners; i++ {
		amount, err := service.Leave(context.Background(), 1, i)
		assert.NoError(t, err)
		assert.Equal(t, float64(joiners-i), amount)
	}
	assert.Equal(t, 0.0, store.procurement.CurrentAmount)
}
