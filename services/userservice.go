package services

import (
	"context"

	"github.com/RosieHernan04/Employee-Reminder-System-sub000/model"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/store"
)

func UserExists(ctx context.Context, st store.Store, email string) (bool, error) {
	docs, err := st.Find(ctx, store.Users, store.Filter{Field: "email", Op: "==", Value: email})
	if err != nil {
		return false, err
	}
	return len(docs) > 0, nil
}

func GetUserByEmail(ctx context.Context, st store.Store, email string) (model.User, error) {
	docs, err := st.Find(ctx, store.Users, store.Filter{Field: "email", Op: "==", Value: email})
	if err != nil {
		return model.User{}, err
	}
	if len(docs) == 0 {
		return model.User{}, store.ErrNotFound
	}
	return model.UserFromDoc(docs[0].Data, docs[0].ID), nil
}

func GetUserByID(ctx context.Context, st store.Store, userID string) (model.User, error) {
	doc, err := st.Get(ctx, store.Users, userID)
	if err != nil {
		return model.User{}, err
	}
	return model.UserFromDoc(doc.Data, doc.ID), nil
}
