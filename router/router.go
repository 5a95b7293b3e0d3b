package router

import (
	"net/http"

	"coursehub/app/controllers"
	"coursehub/app/middleware"
	"coursehub/app/models"
)

func NewRouter(
	authCtrl *controllers.AuthController,
	courseCtrl *controllers.CourseController,
	enrollCtrl *controllers.EnrollmentController,
	assessCtrl *controllers.AssessmentController,
	payCtrl *controllers.PaymentController,
	mw *middleware.Auth,
) http.Handler {
	mux := http.NewServeMux()

	authed := func(h http.HandlerFunc) http.Handler {
		return mw.RequireAuth(h)
	}
	instructor := func(h http.HandlerFunc) http.Handler {
		return mw.RequireAuth(mw.RequireRole(models.RoleInstructor)(h))
	}
	student := func(h http.HandlerFunc) http.Handler {
		return mw.RequireAuth(mw.RequireRole(models.RoleStudent)(h))
	}

	// public
	mux.HandleFunc("POST /api/signup", authCtrl.Signup)
	mux.HandleFunc("POST /api/login", authCtrl.Login)
	mux.HandleFunc("GET /api/courses", courseCtrl.Search)
	mux.HandleFunc("GET /api/courses/{id}", courseCtrl.Get)
	mux.HandleFunc("GET /api/assessments/{id}", assessCtrl.Get)

	// courses (instructor)
	mux.Handle("POST /api/courses", instructor(courseCtrl.Create))
	mux.Handle("PUT /api/courses/{id}", instructor(courseCtrl.Update))
	mux.Handle("DELETE /api/courses/{id}", instructor(courseCtrl.Delete))

	// enrollments
	mux.Handle("POST /api/enrollments", student(enrollCtrl.Enroll))
	mux.Handle("PUT /api/enrollments/{id}", authed(enrollCtrl.Update))
	mux.Handle("DELETE /api/enrollments/{id}", authed(enrollCtrl.Delete))

	// assessments (instructor)
	mux.Handle("POST /api/assessments", instructor(assessCtrl.Create))
	mux.Handle("PUT /api/assessments/{id}", instructor(assessCtrl.Update))
	mux.Handle("DELETE /api/assessments/{id}", instructor(assessCtrl.Delete))

	// student assessment submissions
	mux.Handle("POST /api/student_assessments", student(assessCtrl.Submit))
	mux.Handle("GET /api/student_assessments", student(assessCtrl.ListSubmissions))
	mux.Handle("GET /api/student_assessments/{id}", student(assessCtrl.GetSubmission))

	// payments
	mux.Handle("POST /api/payments", student(payCtrl.Create))
	mux.Handle("GET /api/payments", student(payCtrl.List))
	mux.Handle("GET /api/payments/{id}", authed(payCtrl.Get))
	mux.Handle("PUT /api/payments/{id}", student(payCtrl.Update))
	mux.Handle("DELETE /api/payments/{id}", student(payCtrl.Delete))

	return mux
}
