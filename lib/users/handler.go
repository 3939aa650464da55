package usershandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"crewtime-backend/db"
	contactsstore "crewtime-backend/lib/users/contacts-store"
	usersettingsstore "crewtime-backend/lib/users/settings-store"
	usersstore "crewtime-backend/lib/users/store"
	authhelpers "crewtime-backend/lib/utils/auth-helpers"
	"crewtime-backend/models"
	apimodels "crewtime-backend/models/api"
	userapimodels "crewtime-backend/models/api/user"
	dbmodels "crewtime-backend/models/db"
)

type Provider interface {
	Create(data userapimodels.CreateUserData) (id string, hMsg string, err error)
	GetByID(id string) (userapimodels.UserView, error)
	List(pagination apimodels.Pagination) (list []userapimodels.UserView, rowCount int64, err error)
	Deactivate(id string) error
	UpdateSettings(userID string, data userapimodels.SettingsUpdateData) error
	UpdateContacts(userID string, data userapimodels.ContactsUpdateData) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         usersstore.NewInstance(db.DB),
		settingsStore: usersettingsstore.NewInstance(db.DB),
		contactsStore: contactsstore.NewInstance(db.DB),
	}
}

type impl struct {
	store         usersstore.Provider
	settingsStore usersettingsstore.Provider
	contactsStore contactsstore.Provider
}

func (i impl) getLogger(userID string) *log.Entry {
	return log.WithField("user_id", userID)
}

func (i impl) Create(data userapimodels.CreateUserData) (id string, hMsg string, err error) {
	exist, err := i.store.ExistByEmail(data.Email)
	if err != nil {
		return "", "", err
	}
	if exist {
		return "", "a user with this email already exists", nil
	}
	hash, err := authhelpers.HashPassword(data.Password)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to hash password")
	}
	rec := dbmodels.User{
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Email:       data.Email,
		Password:    hash,
		PhoneNumber: data.PhoneNumber,
		Role:        data.Role,
		Status:      models.UserWorkingStatus,
		IsActive:    true,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to create user")
	}
	// default settings and contacts rows so partial updates always have a target
	_, err = i.settingsStore.Save(dbmodels.UserSettings{UserID: id, Language: "en"})
	if err != nil {
		i.getLogger(id).WithError(err).Error("failed to create default user settings")
	}
	_, err = i.contactsStore.Save(dbmodels.Contacts{UserID: id, Email: data.Email, PhoneNumber: data.PhoneNumber})
	if err != nil {
		i.getLogger(id).WithError(err).Error("failed to create default user contacts")
	}
	i.getLogger(id).Info("user created")
	return id, "", nil
}

func (i impl) GetByID(id string) (userapimodels.UserView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return userapimodels.UserView{}, err
	}
	if rec == nil {
		return userapimodels.UserView{}, errors.New("user not found")
	}
	return userapimodels.UserConvert(*rec), nil
}

func (i impl) List(pagination apimodels.Pagination) (list []userapimodels.UserView, rowCount int64, err error) {
	rowCount, err = i.store.ListCount()
	if err != nil {
		return nil, 0, err
	}
	page, limit := pagination.GetPage()
	recList, err := i.store.List(page, limit)
	if err != nil {
		return nil, 0, err
	}
	list = make([]userapimodels.UserView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, userapimodels.UserConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) Deactivate(id string) error {
	return i.store.Update(id, map[string]interface{}{
		"is_active": false,
		"status":    models.UserInactiveStatus,
	})
}

func (i impl) UpdateSettings(userID string, data userapimodels.SettingsUpdateData) error {
	return i.settingsStore.Update(userID, data.ToUpdMap())
}

func (i impl) UpdateContacts(userID string, data userapimodels.ContactsUpdateData) error {
	return i.contactsStore.Update(userID, data.ToUpdMap())
}
