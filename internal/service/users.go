package service

import (
	"context"

	"github.com/geocoder89/eventdesk/internal/auth"
	"github.com/geocoder89/eventdesk/internal/domain/user"
)

// UserView is a user without the password.
type UserView struct {
	Username string
	FullName string
	Role     user.Role
}

func (s *Service) AddStudent(ctx context.Context, req user.CreateStudentRequest) (UserView, error) {
	var view UserView

	err := s.run(ctx, "add_student", user.CapManageUsers, func(ctx context.Context, _ auth.Identity) error {
		users, err := s.users.LoadAll(ctx)
		if err != nil {
			return err
		}

		users, created, err := user.AddStudent(users, req)
		if err != nil {
			return err
		}
		if err := s.users.SaveAll(ctx, users); err != nil {
			return err
		}

		view = UserView{Username: created.Username, FullName: created.FullName, Role: created.Role}
		return nil
	})
	return view, err
}

func (s *Service) ListUsers(ctx context.Context) ([]UserView, error) {
	var views []UserView

	err := s.run(ctx, "list_users", user.CapManageUsers, func(ctx context.Context, _ auth.Identity) error {
		users, err := s.users.LoadAll(ctx)
		if err != nil {
			return err
		}

		views = make([]UserView, 0, len(users))
		for _, u := range users {
			views = append(views, UserView{Username: u.Username, FullName: u.FullName, Role: u.Role})
		}
		return nil
	})
	return views, err
}
