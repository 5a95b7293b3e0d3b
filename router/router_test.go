package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	jwtutil "coursehub/app/jwt"
	"coursehub/app/models"
	"coursehub/global"
	"coursehub/initialize"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestApp(t *testing.T) *initialize.App {
	t.Helper()
	global.Logger = zerolog.Nop()

	dir := t.TempDir()
	cfg := fmt.Sprintf(`server:
  host: 127.0.0.1
  port: 0
db:
  driver: sqlite
  path: %s
jwt:
  secret: %s
  issuer: coursehub
  exp_min: 60
redis:
  enabled: false
`, filepath.Join(dir, "test.db"), testSecret)

	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	app, err := initialize.Build(cfgPath)
	require.NoError(t, err)
	return app
}

func do(t *testing.T, app *initialize.App, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func signup(t *testing.T, app *initialize.App, username, email, role string) {
	t.Helper()
	rec := do(t, app, http.MethodPost, "/api/signup", "", map[string]interface{}{
		"username": username, "email": email, "password": "secret", "role": role,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func login(t *testing.T, app *initialize.App, email string) string {
	t.Helper()
	rec := do(t, app, http.MethodPost, "/api/login", "", map[string]interface{}{
		"email": email, "password": "secret",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func createCourse(t *testing.T, app *initialize.App, token string) int64 {
	t.Helper()
	rec := do(t, app, http.MethodPost, "/api/courses", token, map[string]interface{}{
		"title": "Go 101", "description": "intro", "category": "programming",
		"price": 49.0, "duration": "4 weeks",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var resp struct {
		CourseID int64 `json:"courseId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.CourseID
}

func TestSignup_DuplicateEmailRejected(t *testing.T) {
	app := newTestApp(t)

	rec := do(t, app, http.MethodPost, "/api/signup", "", map[string]interface{}{
		"username": "ann", "email": "a@x.com", "password": "secret",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, app, http.MethodPost, "/api/signup", "", map[string]interface{}{
		"username": "ann2", "email": "a@x.com", "password": "secret",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "user already exists")
}

func TestSignup_MissingFields(t *testing.T) {
	app := newTestApp(t)

	rec := do(t, app, http.MethodPost, "/api/signup", "", map[string]interface{}{
		"username": "ann",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	app := newTestApp(t)
	signup(t, app, "ann", "ann@x.com", "student")

	rec := do(t, app, http.MethodPost, "/api/login", "", map[string]interface{}{
		"email": "ann@x.com", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectedEndpoint_MissingToken(t *testing.T) {
	app := newTestApp(t)

	rec := do(t, app, http.MethodPost, "/api/courses", "", map[string]interface{}{})
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Contains(t, rec.Body.String(), "token is missing")
}

func TestProtectedEndpoint_MalformedHeader(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/courses", bytes.NewBufferString("{}"))
	req.Header.Set("Authorization", "Bearer")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectedEndpoint_ExpiredToken(t *testing.T) {
	app := newTestApp(t)
	signup(t, app, "ann", "ann@x.com", "student")

	expired := &jwtutil.Signer{Secret: []byte(testSecret), Issuer: "coursehub", ExpMin: -1}
	token, err := expired.Sign(1)
	require.NoError(t, err)

	rec := do(t, app, http.MethodPost, "/api/enrollments", token, map[string]interface{}{"courseId": 1})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "token has expired")
}

func TestProtectedEndpoint_DeletedUserLooksLikeBadToken(t *testing.T) {
	app := newTestApp(t)
	signup(t, app, "ann", "ann@x.com", "student")
	token := login(t, app, "ann@x.com")

	require.NoError(t, app.DB.Where("user_id = ?", 1).Delete(&models.User{}).Error)

	rec := do(t, app, http.MethodPost, "/api/enrollments", token, map[string]interface{}{"courseId": 1})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "invalid token")
}

func TestInstructorEndpoint_StudentForbidden(t *testing.T) {
	app := newTestApp(t)
	signup(t, app, "stu", "stu@x.com", "student")
	token := login(t, app, "stu@x.com")

	rec := do(t, app, http.MethodPost, "/api/courses", token, map[string]interface{}{
		"title": "Go 101", "description": "intro", "category": "programming",
		"price": 49.0, "duration": "4 weeks",
	})
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Contains(t, rec.Body.String(), "instructors only")
}

func TestCourse_CreateGetSearch(t *testing.T) {
	app := newTestApp(t)
	signup(t, app, "ins", "ins@x.com", "instructor")
	token := login(t, app, "ins@x.com")

	courseID := createCourse(t, app, token)
	require.Equal(t, int64(1), courseID)

	rec := do(t, app, http.MethodGet, fmt.Sprintf("/api/courses/%d", courseID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var course models.Course
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &course))
	require.Equal(t, "Go 101", course.Title)
	require.Equal(t, int64(1), course.InstructorID)

	rec = do(t, app, http.MethodGet, "/api/courses/abc", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, app, http.MethodGet, "/api/courses?category=programming&priceRange=10-100", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []models.Course
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)

	// outside the price window
	rec = do(t, app, http.MethodGet, "/api/courses?priceRange=100-200", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 0)

	rec = do(t, app, http.MethodGet, "/api/courses?priceRange=200-100", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, app, http.MethodGet, "/api/courses?priceRange=abc", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCourse_UpdateScopedToOwningInstructor(t *testing.T) {
	app := newTestApp(t)
	signup(t, app, "ins1", "ins1@x.com", "instructor")
	signup(t, app, "ins2", "ins2@x.com", "instructor")
	owner := login(t, app, "ins1@x.com")
	other := login(t, app, "ins2@x.com")

	courseID := createCourse(t, app, owner)
	path := fmt.Sprintf("/api/courses/%d", courseID)

	rec := do(t, app, http.MethodPut, path, other, map[string]interface{}{"title": "stolen"})
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, app, http.MethodPut, path, owner, map[string]interface{}{"title": "Go 102"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, app, http.MethodPut, path, owner, map[string]interface{}{})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, app, http.MethodDelete, path, other, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, app, http.MethodDelete, path, owner, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestEnrollment_OwnershipRules(t *testing.T) {
	app := newTestApp(t)
	signup(t, app, "ins", "ins@x.com", "instructor")
	signup(t, app, "stu1", "stu1@x.com", "student")
	signup(t, app, "stu2", "stu2@x.com", "student")
	ins := login(t, app, "ins@x.com")
	stu1 := login(t, app, "stu1@x.com")
	stu2 := login(t, app, "stu2@x.com")

	courseID := createCourse(t, app, ins)

	rec := do(t, app, http.MethodPost, "/api/enrollments", stu1, map[string]interface{}{"courseId": courseID})
	require.Equal(t, http.StatusCreated, rec.Code)
	var enr struct {
		EnrollmentID int64 `json:"enrollmentId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &enr))

	// duplicate enrollment
	rec = do(t, app, http.MethodPost, "/api/enrollments", stu1, map[string]interface{}{"courseId": courseID})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "already enrolled")

	// unknown course
	rec = do(t, app, http.MethodPost, "/api/enrollments", stu2, map[string]interface{}{"courseId": 999})
	require.Equal(t, http.StatusNotFound, rec.Code)

	path := fmt.Sprintf("/api/enrollments/%d", enr.EnrollmentID)

	// another student may not delete it
	rec = do(t, app, http.MethodDelete, path, stu2, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	// the owner may
	rec = do(t, app, http.MethodDelete, path, stu1, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, app, http.MethodDelete, path, stu1, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAssessment_SubmitAndFetch(t *testing.T) {
	app := newTestApp(t)
	signup(t, app, "ins", "ins@x.com", "instructor")
	signup(t, app, "stu", "stu@x.com", "student")
	ins := login(t, app, "ins@x.com")
	stu := login(t, app, "stu@x.com")

	courseID := createCourse(t, app, ins)

	rec := do(t, app, http.MethodPost, "/api/assessments", ins, map[string]interface{}{
		"courseId": courseID, "title": "quiz 1", "type": "quiz",
		"questions": []map[string]interface{}{
			{"text": "2+2?", "answer": "4"},
			{"text": "3+3?", "answer": "6"},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		AssessmentID int64 `json:"assessmentId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	// reading an assessment needs no token
	rec = do(t, app, http.MethodGet, fmt.Sprintf("/api/assessments/%d", created.AssessmentID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// bad type
	rec = do(t, app, http.MethodPost, "/api/assessments", ins, map[string]interface{}{
		"courseId": courseID, "title": "x", "type": "exam",
		"questions": []map[string]interface{}{{"text": "q", "answer": "a"}},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// students cannot create assessments
	rec = do(t, app, http.MethodPost, "/api/assessments", stu, map[string]interface{}{})
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, app, http.MethodPost, "/api/student_assessments", stu, map[string]interface{}{
		"assessmentId": created.AssessmentID, "courseId": courseID,
		"answers": []string{"4", "7"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var submitted struct {
		Score float64 `json:"score"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &submitted))
	require.InDelta(t, 50.0, submitted.Score, 1e-9)

	rec = do(t, app, http.MethodGet, fmt.Sprintf("/api/student_assessments/%d", created.AssessmentID), stu, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, app, http.MethodGet, "/api/student_assessments", stu, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var subs []models.Submission
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &subs))
	require.Len(t, subs, 1)
}

func TestPayment_Lifecycle(t *testing.T) {
	app := newTestApp(t)
	signup(t, app, "ins", "ins@x.com", "instructor")
	signup(t, app, "stu1", "stu1@x.com", "student")
	signup(t, app, "stu2", "stu2@x.com", "student")
	ins := login(t, app, "ins@x.com")
	stu1 := login(t, app, "stu1@x.com")
	stu2 := login(t, app, "stu2@x.com")

	courseID := createCourse(t, app, ins)

	// unknown course
	rec := do(t, app, http.MethodPost, "/api/payments", stu1, map[string]interface{}{
		"courseId": 999, "amount": 49.0,
	})
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, app, http.MethodPost, "/api/payments", stu1, map[string]interface{}{
		"courseId": courseID, "amount": 49.0,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		PaymentID int64 `json:"paymentId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	path := fmt.Sprintf("/api/payments/%d", created.PaymentID)

	rec = do(t, app, http.MethodGet, path, stu1, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var p models.Payment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	require.Equal(t, models.PaymentStatusPending, p.Status)
	require.NotEmpty(t, p.Reference)

	// someone else's payment is invisible to updates
	rec = do(t, app, http.MethodPut, path, stu2, map[string]interface{}{"status": "completed"})
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, app, http.MethodPut, path, stu1, map[string]interface{}{"status": "refunded"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, app, http.MethodPut, path, stu1, map[string]interface{}{"status": "completed"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, app, http.MethodGet, "/api/payments", stu1, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []models.Payment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)

	rec = do(t, app, http.MethodGet, "/api/payments", stu2, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 0)

	rec = do(t, app, http.MethodDelete, path, stu2, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, app, http.MethodDelete, path, stu1, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}
