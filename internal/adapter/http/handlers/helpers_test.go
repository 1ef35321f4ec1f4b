package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/http/middleware"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/http/session"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/http/views"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/persistence/repository"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

var testBusiness = usecase.BusinessInfo{Name: "Sparkle Commercial Cleaning", Phone: "(555) 010-2000", Email: "hello@example.com"}

// testAuth only signs and parses tokens, so it needs no employee repository.
var testAuth = usecase.NewAuthUseCase(nil, usecase.AdminCredentials{Username: "admin", Password: "pw"}, "test-signing-key", time.Hour)

func newPages(activity usecase.IActivityLogger) *Pages {
	return newPagesWithStore(repository.NewSessionMemoryRepository(), activity)
}

func newPagesWithStore(store interfaces.ISessionRepository, activity usecase.IActivityLogger) *Pages {
	return NewPages(session.NewManager(store, time.Hour, false), testBusiness, activity)
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tmpl, err := views.Parse()
	if err != nil {
		t.Fatalf("parse templates: %v", err)
	}
	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	return r
}

func authCookie(t *testing.T, p usecase.Principal) *http.Cookie {
	t.Helper()
	token, _, err := testAuth.IssueToken(p)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return &http.Cookie{Name: middleware.AuthCookie, Value: token}
}

func adminOnly() gin.HandlerFunc {
	return middleware.RequireRole(testAuth, usecase.RoleAdmin, "/admin/login")
}

func employeeOnly() gin.HandlerFunc {
	return middleware.RequireRole(testAuth, usecase.RoleEmployee, "/employee/login")
}

var (
	adminPrincipal    = usecase.Principal{Role: usecase.RoleAdmin, Subject: "admin", Name: "Administrator"}
	employeePrincipal = usecase.Principal{Role: usecase.RoleEmployee, Subject: "EMP1", Name: "Maria"}
)

func serve(r *gin.Engine, req *http.Request, cookies []*http.Cookie) *httptest.ResponseRecorder {
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	return serve(r, httptest.NewRequest(http.MethodGet, path, nil), cookies)
}

func postForm(r *gin.Engine, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return serve(r, req, cookies)
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return serve(r, req, nil)
}

func postMultipart(t *testing.T, r *gin.Engine, path string, fields map[string]string, fileName string, content []byte, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if fileName != "" {
		fw, err := mw.CreateFormFile("photo", fileName)
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		if _, err := fw.Write(content); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return serve(r, req, cookies)
}

// sessionCookies returns the live cookies set by a response.
func sessionCookies(w *httptest.ResponseRecorder) []*http.Cookie {
	var out []*http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Value != "" && ck.MaxAge >= 0 {
			out = append(out, ck)
		}
	}
	return out
}

func expectRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusFound || w.Header().Get("Location") != location {
		t.Fatalf("expected redirect to %s, got %d %q", location, w.Code, w.Header().Get("Location"))
	}
}
