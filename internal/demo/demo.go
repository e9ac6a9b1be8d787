// Package demo registers example routes that exercise every path through the
// error handler: catalog kinds, a custom kind with a message template, and
// request validation for path parameters, query strings and JSON bodies.
package demo

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/kbukum/errkit/errors"
	"github.com/kbukum/errkit/server"
	"github.com/kbukum/errkit/validation"
)

// UserNotFoundName is the catalog name of ErrUserNotFound.
const UserNotFoundName = "UserNotFound"

// ErrUserNotFound is raised for unknown user IDs.
var ErrUserNotFound = apperrors.Declare(http.StatusNotFound, "USER_NOT_FOUND", "User %s not found",
	apperrors.WithDescription("No user exists with the given ID"))

// User is the demo resource.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age,omitempty"`
}

type createUserRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=64"`
	Email string `json:"email" binding:"required,email"`
	Age   int    `json:"age" binding:"omitempty,gte=0,lte=150"`
}

type userURI struct {
	ID string `uri:"id" binding:"required,uuid"`
}

type listQuery struct {
	Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Sort  string `form:"sort" binding:"omitempty,oneof=name email"`
}

type store struct {
	mu    sync.RWMutex
	users map[string]User
	order []string
}

// Register declares ErrUserNotFound on plugin and mounts the demo routes on
// r, documenting their error responses.
func Register(r gin.IRouter, plugin *server.Plugin) error {
	if err := plugin.Declare(UserNotFoundName, ErrUserNotFound); err != nil {
		return err
	}

	s := &store{users: make(map[string]User)}

	routes := []struct {
		method  string
		path    string
		handler server.Handler
		errors  []any
	}{
		{http.MethodGet, "/raise/:name", raise(plugin), []any{"NotFoundError"}},
		{http.MethodGet, "/users", s.list, []any{apperrors.ValidationErrorName}},
		{http.MethodPost, "/users", s.create, []any{apperrors.ValidationErrorName, "BadRequestError", "PayloadTooLargeError", "ConflictError"}},
		{http.MethodGet, "/users/:id", s.get, []any{apperrors.ValidationErrorName, UserNotFoundName}},
		{http.MethodDelete, "/users/:id", s.delete, []any{apperrors.ValidationErrorName, UserNotFoundName}},
	}
	for _, rt := range routes {
		if _, err := plugin.DocumentRoute(rt.method, rt.path, rt.errors...); err != nil {
			return err
		}
		r.Handle(rt.method, rt.path, server.Handle(rt.handler))
	}
	return nil
}

// raise answers with the catalog kind named in the path.
func raise(plugin *server.Plugin) server.Handler {
	return func(c *gin.Context) error {
		name := c.Param("name")
		if name == apperrors.ValidationErrorName {
			return validation.New(validation.ContextParams).
				Custom(false, "name", "not", "must not be "+name).
				Validate()
		}
		k, ok := plugin.Errors().Lookup(name)
		if !ok {
			return apperrors.NotFoundError.New()
		}
		if k == ErrUserNotFound {
			return k.New(uuid.Nil.String())
		}
		return k.New()
	}
}

func (s *store) list(c *gin.Context) error {
	var q listQuery
	if err := validation.BindQuery(c, &q); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]User, 0, len(s.order))
	for _, id := range s.order {
		users = append(users, s.users[id])
		if q.Limit > 0 && len(users) == q.Limit {
			break
		}
	}
	server.RespondOKWithMeta(c, users, &server.Meta{Total: len(s.order)})
	return nil
}

func (s *store) create(c *gin.Context) error {
	var req createUserRequest
	if err := validation.BindJSON(c, &req); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == req.Email {
			return apperrors.ConflictError.New()
		}
	}
	user := User{ID: uuid.NewString(), Name: req.Name, Email: req.Email, Age: req.Age}
	s.users[user.ID] = user
	s.order = append(s.order, user.ID)

	server.RespondCreated(c, user)
	return nil
}

func (s *store) get(c *gin.Context) error {
	var uri userURI
	if err := validation.BindURI(c, &uri); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[uri.ID]
	if !ok {
		return ErrUserNotFound.New(uri.ID)
	}
	server.RespondOK(c, user)
	return nil
}

func (s *store) delete(c *gin.Context) error {
	id, err := validation.ValidateUUID("id", c.Param("id"))
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := id.String()
	if _, ok := s.users[key]; !ok {
		return ErrUserNotFound.New(key)
	}
	delete(s.users, key)
	for i, v := range s.order {
		if v == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	server.RespondNoContent(c)
	return nil
}
