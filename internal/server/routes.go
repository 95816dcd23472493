package server

import (
	"errors"

	"notesapi/internal/database/models"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *FiberServer) RegisterFiberRoutes() {
	s.App.Get("/health", s.healthHandler)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := s.App.Group("/api")

	api.Post("/users", s.createUser)
	api.Get("/users", s.getAllUsers)
	api.Get("/users/:userId", s.getUser)
	api.Delete("/users/:userId", s.deleteUser)

	api.Post("/notes", s.createNote)
	api.Get("/notes", s.getNotesByUser)
	api.Get("/notes/:noteId", s.getSingleNote)
	api.Put("/notes/:noteId", s.updateNote)
	api.Delete("/notes/:noteId", s.deleteNote)

	api.Post("/photos", s.createPhoto)
	api.Get("/photos", s.getPhotosByNote)
	api.Get("/photos/:photoId", s.getSinglePhoto)
	api.Delete("/photos/:photoId", s.deletePhoto)
}

func (s *FiberServer) healthHandler(c *fiber.Ctx) error {
	return c.JSON(s.db.Health())
}

func (s *FiberServer) createUser(c *fiber.Ctx) error {
	user, err := s.users.CreateUser(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toUserResponse(*user))
}

func (s *FiberServer) getUser(c *fiber.Ctx) error {
	uid, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid uid"})
	}
	user, err := s.users.GetUserByID(c.Context(), uid)
	if errors.Is(err, models.ErrUserNotFound) {
		return c.SendStatus(fiber.StatusNotFound)
	}
	if err != nil {
		return err
	}
	return c.JSON(toUserResponse(*user))
}

func (s *FiberServer) getAllUsers(c *fiber.Ctx) error {
	allUsers, err := s.users.GetAllUsers(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(toUserResponses(allUsers))
}

func (s *FiberServer) deleteUser(c *fiber.Ctx) error {
	uid, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid uid"})
	}
	if err := s.users.DeleteUser(c.Context(), uid); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *FiberServer) createNote(c *fiber.Ctx) error {
	request := NoteCreateRequest{}
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}
	note, err := s.notes.CreateNote(c.Context(), request.toInput())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toNoteResponse(*note))
}

// getNotesByUser returns the notes owned by the user named in the userId
// query parameter. An unknown user yields an empty list, not an error.
func (s *FiberServer) getNotesByUser(c *fiber.Ctx) error {
	uid, err := uuid.Parse(c.Query("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid uid"})
	}
	userNotes, err := s.notes.GetNotesByUser(c.Context(), uid)
	if err != nil {
		return err
	}
	return c.JSON(toNoteResponses(userNotes))
}

func (s *FiberServer) getSingleNote(c *fiber.Ctx) error {
	uid, err := uuid.Parse(c.Params("noteId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid uid"})
	}
	note, err := s.notes.GetNoteByID(c.Context(), uid)
	if errors.Is(err, models.ErrNoteNotFound) {
		return c.SendStatus(fiber.StatusNotFound)
	}
	if err != nil {
		return err
	}
	return c.JSON(toNoteResponse(*note))
}

func (s *FiberServer) updateNote(c *fiber.Ctx) error {
	uid, err := uuid.Parse(c.Params("noteId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid uid"})
	}
	request := NoteUpdateRequest{}
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}
	if err := s.notes.UpdateNote(c.Context(), uid, request.toInput()); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *FiberServer) deleteNote(c *fiber.Ctx) error {
	uid, err := uuid.Parse(c.Params("noteId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid uid"})
	}
	if err := s.notes.DeleteNote(c.Context(), uid); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *FiberServer) createPhoto(c *fiber.Ctx) error {
	request := PhotoCreateRequest{}
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}
	photo, err := s.photos.CreatePhoto(c.Context(), request.toInput())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toPhotoResponse(*photo))
}

func (s *FiberServer) getPhotosByNote(c *fiber.Ctx) error {
	uid, err := uuid.Parse(c.Query("noteId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid uid"})
	}
	notePhotos, err := s.photos.GetPhotosByNote(c.Context(), uid)
	if err != nil {
		return err
	}
	return c.JSON(toPhotoResponses(notePhotos))
}

func (s *FiberServer) getSinglePhoto(c *fiber.Ctx) error {
	uid, err := uuid.Parse(c.Params("photoId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid uid"})
	}
	photo, err := s.photos.GetPhotoByID(c.Context(), uid)
	if errors.Is(err, models.ErrPhotoNotFound) {
		return c.SendStatus(fiber.StatusNotFound)
	}
	if err != nil {
		return err
	}
	return c.JSON(toPhotoResponse(*photo))
}

func (s *FiberServer) deletePhoto(c *fiber.Ctx) error {
	uid, err := uuid.Parse(c.Params("photoId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid uid"})
	}
	if err := s.photos.DeletePhoto(c.Context(), uid); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
