package authhandler

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"crewtime-backend/db"
	usersstore "crewtime-backend/lib/users/store"
	authhelpers "crewtime-backend/lib/utils/auth-helpers"
	authutils "crewtime-backend/lib/utils/auth-utils"
	"crewtime-backend/models"
	authapimodels "crewtime-backend/models/api/auth"
)

type Provider interface {
	Login(email, password string) (response authapimodels.JWTResponse, err error)
	Refresh(refreshToken string) (response authapimodels.JWTResponse, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store usersstore.Provider
}

func (i impl) Login(email, password string) (response authapimodels.JWTResponse, err error) {
	logger := log.WithField("email", email)
	user, err := i.store.FindByEmail(email)
	if err != nil {
		logger.
			WithError(err).
			Error("failed to find user by email")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		logger.Debug("no user with this email")
		return authapimodels.JWTResponse{}, errors.New("invalid email or password")
	}
	if user.Status != models.UserWorkingStatus {
		logger.Debug("user is not active")
		return authapimodels.JWTResponse{}, errors.New("account is deactivated")
	}
	if !authhelpers.CheckPassword(user.Password, password) {
		logger.Debug("user failed the password check")
		return authapimodels.JWTResponse{}, errors.New("invalid email or password")
	}
	tokenString, err := authutils.GetToken(*user)
	if err != nil {
		logger.WithError(err).Error("failed to generate JWT")
		return authapimodels.JWTResponse{}, err
	}
	refreshString, err := authutils.GetRefreshToken(user.ID, user.GetFullName())
	if err != nil {
		logger.WithError(err).Error("failed to generate refresh JWT")
		return authapimodels.JWTResponse{}, err
	}
	err = i.store.Update(user.ID, map[string]interface{}{"last_login": time.Now()})
	if err != nil {
		logger.
			WithError(err).
			Error("failed to update last login time")
	}
	return authapimodels.JWTResponse{
		Token:        tokenString,
		RefreshToken: refreshString,
	}, nil
}

func (i impl) Refresh(refreshToken string) (response authapimodels.JWTResponse, err error) {
	claims, err := authutils.ParseToken(refreshToken)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.New("invalid refresh token")
	}
	userID, err := claims.GetSubject()
	if err != nil || userID == "" {
		return authapimodels.JWTResponse{}, errors.New("invalid refresh token")
	}
	user, err := i.store.GetByID(userID)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	if user == nil || user.Status != models.UserWorkingStatus {
		return authapimodels.JWTResponse{}, errors.New("account is deactivated")
	}
	tokenString, err := authutils.GetToken(*user)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	refreshString, err := authutils.GetRefreshToken(user.ID, user.GetFullName())
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{
		Token:        tokenString,
		RefreshToken: refreshString,
	}, nil
}
