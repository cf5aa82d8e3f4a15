package submit_application_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WorkoutBooking/internal/api/handlers"
	handler "github.com/m04kA/SMC-WorkoutBooking/internal/api/handlers/submit_application"
	"github.com/m04kA/SMC-WorkoutBooking/internal/service/forms"
	"github.com/m04kA/SMC-WorkoutBooking/internal/service/forms/models"
	submitApplication "github.com/m04kA/SMC-WorkoutBooking/internal/usecase/submit_application"
	"github.com/m04kA/SMC-WorkoutBooking/pkg/logger"
)

// MockUseCase имитирует use case отправки заявки
type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *submitApplication.Request) (*submitApplication.Response, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*submitApplication.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

func submit(uc *MockUseCase, formID string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/forms/{formId}/submit", handler.NewHandler(uc, logger.Nop()).Handle).Methods(http.MethodPost)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/forms/"+formID+"/submit", nil))
	return rec
}

func TestHandle_Submitted(t *testing.T) {
	uc := &MockUseCase{}
	uc.On("Execute", mock.Anything, &submitApplication.Request{FormID: "form-1"}).
		Return(&submitApplication.Response{Form: &models.FormResponse{ID: "form-1", Status: "submitted"}}, nil)

	rec := submit(uc, "form-1")
	require.Equal(t, http.StatusOK, rec.Code)

	var form models.FormResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &form))
	assert.Equal(t, "submitted", form.Status)
	uc.AssertExpectations(t)
}

func TestHandle_SubmissionFailed(t *testing.T) {
	uc := &MockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(
		&submitApplication.Response{Form: &models.FormResponse{ID: "form-1", Status: "editing", FirstName: "Anna"}},
		fmt.Errorf("%w: 500 Internal Server Error", submitApplication.ErrSubmissionFailed),
	)

	rec := submit(uc, "form-1")
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var resp handler.SubmitFailedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, submitApplication.MsgSubmissionFailed, resp.Error)
	require.NotNil(t, resp.Form)
	assert.Equal(t, "editing", resp.Form.Status)
	assert.Equal(t, "Anna", resp.Form.FirstName)
}

func TestHandle_FormErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"Incomplete", fmt.Errorf("%w: missing photo", forms.ErrIncomplete), http.StatusUnprocessableEntity},
		{"AlreadySubmitting", fmt.Errorf("%w: status is submitting", forms.ErrNotEditing), http.StatusConflict},
		{"NotFound", forms.ErrFormNotFound, http.StatusNotFound},
		{"Unexpected", fmt.Errorf("%w: boom", submitApplication.ErrInternal), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &MockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := submit(uc, "form-1")
			assert.Equal(t, tt.status, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}
