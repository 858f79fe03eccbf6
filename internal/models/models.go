package models

// All returns every persisted model, in migration order.
func All() []interface{} {
	return []interface{}{
		&Tenant{},
		&User{},
		&Client{},
		&Case{},
		&Hearing{},
		&DiaryEntry{},
		&Document{},
		&Article{},
		&SystemLog{},
	}
}
