package usecase

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-backoffice/internal/apperror"
	"github.com/fekuna/omnipos-backoffice/internal/model"
	"github.com/fekuna/omnipos-backoffice/internal/supplier/dto"
	"github.com/fekuna/omnipos-backoffice/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, s *model.Supplier) error {
	return m.Called(s).Error(0)
}

func (m *mockRepo) FindByID(ctx context.Context, id int64) (*model.Supplier, error) {
	args := m.Called(id)
	s, _ := args.Get(0).(*model.Supplier)
	return s, args.Error(1)
}

func (m *mockRepo) FindAll(ctx context.Context, f *dto.SupplierFilters) ([]model.Supplier, int, error) {
	args := m.Called(f)
	return args.Get(0).([]model.Supplier), args.Int(1), args.Error(2)
}

func (m *mockRepo) Update(ctx context.Context, s *model.Supplier) error {
	return m.Called(s).Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(id).Error(0)
}

func strPtr(s string) *string { return &s }

func TestCreateSupplierDefaultsToActive(t *testing.T) {
	repo := new(mockRepo)
	repo.On("Create", mock.MatchedBy(func(s *model.Supplier) bool { return s.Active })).Return(nil)

	s, err := NewSupplierUseCase(repo, logger.NewNop()).CreateSupplier(context.Background(), &dto.SupplierInput{
		SupplierName:  "Acme",
		ContactPerson: "Jane Roe",
	})

	require.NoError(t, err)
	assert.True(t, s.Active)
	repo.AssertExpectations(t)
}

func TestCreateSupplierValidation(t *testing.T) {
	tests := []struct {
		name  string
		input dto.SupplierInput
		field string
	}{
		{"missing name", dto.SupplierInput{ContactPerson: "Jane"}, "supplier_name"},
		{"missing contact", dto.SupplierInput{SupplierName: "Acme"}, "contact_person"},
		{"bad email", dto.SupplierInput{SupplierName: "Acme", ContactPerson: "Jane", Email: strPtr("nope")}, "email"},
		{"bad website", dto.SupplierInput{SupplierName: "Acme", ContactPerson: "Jane", Website: strPtr("not a url")}, "website"},
		{"long phone", dto.SupplierInput{SupplierName: "Acme", ContactPerson: "Jane", Phone: strPtr("012345678901234567890")}, "phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockRepo)
			_, err := NewSupplierUseCase(repo, logger.NewNop()).CreateSupplier(context.Background(), &tt.input)

			var verr *apperror.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Fields[0].Field)
			repo.AssertNotCalled(t, "Create", mock.Anything)
		})
	}
}

func TestUpdateSupplierCanDeactivate(t *testing.T) {
	inactive := false
	repo := new(mockRepo)
	repo.On("FindByID", int64(2)).Return(&model.Supplier{BaseModel: model.BaseModel{ID: 2}, Active: true}, nil)
	repo.On("Update", mock.Anything).Return(nil)

	s, err := NewSupplierUseCase(repo, logger.NewNop()).UpdateSupplier(context.Background(), 2, &dto.SupplierInput{
		SupplierName:  "Acme",
		ContactPerson: "Jane Roe",
		Active:        &inactive,
	})

	require.NoError(t, err)
	assert.False(t, s.Active)
}

func TestGetSupplierNotFound(t *testing.T) {
	repo := new(mockRepo)
	repo.On("FindByID", int64(8)).Return(nil, nil)

	_, err := NewSupplierUseCase(repo, logger.NewNop()).GetSupplier(context.Background(), 8)

	var nf *apperror.NotFoundError
	assert.ErrorAs(t, err, &nf)
}
