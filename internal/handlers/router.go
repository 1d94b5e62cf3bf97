package handlers

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"planner/internal/middleware"
)

type Handlers struct {
	Users    UserHandler
	Projects ProjectHandler
	Tasks    TaskHandler
	Subtasks SubtaskHandler
	Notes    NoteHandler
	Reports  ReportHandler
	Health   HealthHandler
}

// Routes builds the full router. Static segments (cleanup, filter,
// range) coexist with /{id} because chi matches them first.
func (h *Handlers) Routes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.Users.CreateUser)      // POST /users
		r.Get("/", h.Users.ListUsers)        // GET /users

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Users.GetUser)       // GET /users/{id}
			r.Put("/", h.Users.UpdateUser)    // PUT /users/{id}
			r.Delete("/", h.Users.DeleteUser) // DELETE /users/{id}

			r.Get("/projects", h.Users.ListUserProjects) // GET /users/{id}/projects
			r.Get("/notes", h.Users.ListUserNotes)       // GET /users/{id}/notes
		})
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Post("/", h.Tasks.CreateTask) // POST /tasks
		r.Get("/", h.Tasks.ListTasks)   // GET /tasks?user={id}

		r.Delete("/cleanup/{user_id}/{days}", h.Tasks.CleanupTasks)       // DELETE /tasks/cleanup/{user_id}/{days}
		r.Get("/filter/{user_id}/{date}/{finished}", h.Tasks.FilterTasks) // GET /tasks/filter/{user_id}/{date}/{finished}
		r.Get("/range/{user_id}/{start}/{end}", h.Tasks.RangeTasks)       // GET /tasks/range/{user_id}/{start}/{end}

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Tasks.GetTask)       // GET /tasks/{id}
			r.Put("/", h.Tasks.UpdateTask)    // PUT /tasks/{id}
			r.Delete("/", h.Tasks.DeleteTask) // DELETE /tasks/{id}

			r.Post("/complete", h.Tasks.MarkComplete)     // POST /tasks/{id}/complete
			r.Get("/subtasks", h.Tasks.ListTaskSubtasks)  // GET /tasks/{id}/subtasks
		})
	})

	r.Route("/projects", func(r chi.Router) {
		r.Post("/", h.Projects.CreateProject) // POST /projects

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Projects.GetProject)       // GET /projects/{id}
			r.Put("/", h.Projects.UpdateProject)    // PUT /projects/{id}
			r.Delete("/", h.Projects.DeleteProject) // DELETE /projects/{id}
		})
	})

	r.Route("/subtasks", func(r chi.Router) {
		r.Post("/", h.Subtasks.CreateSubtask) // POST /subtasks

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Subtasks.GetSubtask)       // GET /subtasks/{id}
			r.Put("/", h.Subtasks.UpdateSubtask)    // PUT /subtasks/{id}
			r.Delete("/", h.Subtasks.DeleteSubtask) // DELETE /subtasks/{id}
		})
	})

	r.Route("/notes", func(r chi.Router) {
		r.Post("/", h.Notes.CreateNote) // POST /notes

		r.Delete("/cleanup/{user_id}/{days}", h.Notes.CleanupNotes) // DELETE /notes/cleanup/{user_id}/{days}

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Notes.GetNote)       // GET /notes/{id}
			r.Put("/", h.Notes.UpdateNote)    // PUT /notes/{id}
			r.Delete("/", h.Notes.DeleteNote) // DELETE /notes/{id}
		})
	})

	r.Route("/reports", func(r chi.Router) {
		r.Get("/tasks/completion", h.Reports.TaskCompletionReport) // GET /reports/tasks/completion
		r.Get("/notes/activity", h.Reports.NoteActivityReport)     // GET /reports/notes/activity
	})

	r.Get("/health", h.Health.HealthCheck)

	return r
}
