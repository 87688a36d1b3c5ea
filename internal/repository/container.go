package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User         UserRepo
	Profile      ProfileRepo
	Request      RequestRepo
	Match        MatchRepo
	Notification NotificationRepo
	Chat         ChatRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:         NewUserRepo(db),
		Profile:      NewProfileRepo(db),
		Request:      NewRequestRepo(db),
		Match:        NewMatchRepo(db),
		Notification: NewNotificationRepo(db),
		Chat:         NewChatRepo(db),
		db:           db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:         r.User.WithTx(tx),
		Profile:      r.Profile.WithTx(tx),
		Request:      r.Request.WithTx(tx),
		Match:        r.Match.WithTx(tx),
		Notification: r.Notification.WithTx(tx),
		Chat:         r.Chat.WithTx(tx),
		db:           tx,
	}
}

// ExecTx runs fn inside a single database transaction. A container built
// without a connection (mocked repos) runs fn directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
