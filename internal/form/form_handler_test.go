package form_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-garderie/internal/bootstrap"
	"go-garderie/internal/form"
	formerrors "go-garderie/internal/form/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeAudit struct {
	entries []bootstrap.AuditLog
}

func (f *fakeAudit) Log(ctx context.Context, entry bootstrap.AuditLog) {
	f.entries = append(f.entries, entry)
}

type fakeFormService struct {
	signFn    func(ctx context.Context, req form.SignFormRequest) (form.FormResponse, error)
	getFn     func(ctx context.Context, id string) (form.FormResponse, error)
	getAllFn  func(ctx context.Context) ([]form.FormSummary, error)
	deleteFn  func(ctx context.Context, id string) error
	recordFn  func(ctx context.Context, id string) (*form.Form, error)
	recordsFn func(ctx context.Context) ([]form.Form, error)
}

func (f *fakeFormService) Sign(ctx context.Context, req form.SignFormRequest) (form.FormResponse, error) {
	return f.signFn(ctx, req)
}

func (f *fakeFormService) Get(ctx context.Context, id string) (form.FormResponse, error) {
	return f.getFn(ctx, id)
}

func (f *fakeFormService) GetAll(ctx context.Context) ([]form.FormSummary, error) {
	return f.getAllFn(ctx)
}

func (f *fakeFormService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeFormService) Record(ctx context.Context, id string) (*form.Form, error) {
	return f.recordFn(ctx, id)
}

func (f *fakeFormService) Records(ctx context.Context) ([]form.Form, error) {
	return f.recordsFn(ctx)
}

func TestFormHandler_Sign(t *testing.T) {
	svc := &fakeFormService{
		signFn: func(ctx context.Context, req form.SignFormRequest) (form.FormResponse, error) {
			assert.Equal(t, "Léa", req.ChildName)
			assert.NotEmpty(t, req.ParentSignature)
			return form.FormResponse{ID: "form_1700000000", Status: form.StatusSigned, Signed: true}, nil
		},
	}

	h := form.NewHandler(svc, &fakeAudit{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"child_name":"Léa","parent_signature":"data:image/png;base64,iVBORw0KGgo="}`
	c.Request = httptest.NewRequest(http.MethodPost, "/forms", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Sign(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestFormHandler_Sign_MissingSignature(t *testing.T) {
	svc := &fakeFormService{
		signFn: func(ctx context.Context, req form.SignFormRequest) (form.FormResponse, error) {
			return form.FormResponse{}, formerrors.ErrSignatureRequired
		},
	}

	h := form.NewHandler(svc, &fakeAudit{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodPost, "/forms", strings.NewReader(`{"child_name":"Léa"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Sign(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestFormHandler_Get_NotFound(t *testing.T) {
	svc := &fakeFormService{
		getFn: func(ctx context.Context, id string) (form.FormResponse, error) {
			return form.FormResponse{}, formerrors.ErrFormNotFound
		},
	}

	h := form.NewHandler(svc, &fakeAudit{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/forms/form_missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "form_missing"}}

	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestFormHandler_GetAll_Paginates(t *testing.T) {
	summaries := make([]form.FormSummary, 15)
	for i := range summaries {
		summaries[i] = form.FormSummary{ID: "form_" + strings.Repeat("x", i+1)}
	}
	svc := &fakeFormService{
		getAllFn: func(ctx context.Context) ([]form.FormSummary, error) {
			return summaries, nil
		},
	}

	h := form.NewHandler(svc, &fakeAudit{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/forms?page=2&page_size=10", nil)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	var page []form.FormSummary
	assert.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Len(t, page, 5)
}

func TestFormHandler_Delete_Audits(t *testing.T) {
	svc := &fakeFormService{
		deleteFn: func(ctx context.Context, id string) error {
			assert.Equal(t, "form_1700000000", id)
			return nil
		},
	}
	audit := &fakeAudit{}

	h := form.NewHandler(svc, audit)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodDelete, "/forms/form_1700000000", nil)
	c.Params = gin.Params{{Key: "id", Value: "form_1700000000"}}

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, audit.entries, 1)
	assert.Equal(t, "FORM_DELETED", audit.entries[0].Action)
}
