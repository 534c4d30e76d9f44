package usecase

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-backoffice/internal/apperror"
	"github.com/fekuna/omnipos-backoffice/internal/customer/dto"
	"github.com/fekuna/omnipos-backoffice/internal/model"
	"github.com/fekuna/omnipos-backoffice/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, c *model.Customer) error {
	return m.Called(c).Error(0)
}

func (m *mockRepo) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	args := m.Called(id)
	c, _ := args.Get(0).(*model.Customer)
	return c, args.Error(1)
}

func (m *mockRepo) FindAll(ctx context.Context, f *dto.CustomerFilters) ([]model.Customer, int, error) {
	args := m.Called(f)
	return args.Get(0).([]model.Customer), args.Int(1), args.Error(2)
}

func (m *mockRepo) Update(ctx context.Context, c *model.Customer) error {
	return m.Called(c).Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(id).Error(0)
}

func TestCreateCustomerDefaults(t *testing.T) {
	repo := new(mockRepo)
	repo.On("Create", mock.Anything).Return(nil)

	c, err := NewCustomerUseCase(repo, logger.NewNop()).CreateCustomer(context.Background(), &dto.CustomerInput{
		CustomerName: "Ana Trujillo",
		Email:        "ana@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, model.CustomerStatusActive, c.Status)
	assert.Equal(t, model.CustomerTypeRegular, c.CustomerType)
}

func TestCreateCustomerValidation(t *testing.T) {
	tests := []struct {
		name  string
		input dto.CustomerInput
		field string
	}{
		{"missing email", dto.CustomerInput{CustomerName: "Ana"}, "email"},
		{"invalid email", dto.CustomerInput{CustomerName: "Ana", Email: "ana"}, "email"},
		{"unknown status", dto.CustomerInput{CustomerName: "Ana", Email: "ana@example.com", Status: "banned"}, "status"},
		{"unknown type", dto.CustomerInput{CustomerName: "Ana", Email: "ana@example.com", CustomerType: "gold"}, "customer_type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockRepo)
			_, err := NewCustomerUseCase(repo, logger.NewNop()).CreateCustomer(context.Background(), &tt.input)

			var verr *apperror.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Fields[0].Field)
			repo.AssertNotCalled(t, "Create", mock.Anything)
		})
	}
}

func TestDeleteCustomerReferencedByOrders(t *testing.T) {
	repo := new(mockRepo)
	repo.On("FindByID", int64(1)).Return(&model.Customer{BaseModel: model.BaseModel{ID: 1}}, nil)
	repo.On("Delete", int64(1)).Return(apperror.Field("id", "customer is referenced by other records and cannot be deleted"))

	err := NewCustomerUseCase(repo, logger.NewNop()).DeleteCustomer(context.Background(), 1)

	var verr *apperror.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields[0].Message, "referenced")
}
