package db

import "gorm.io/gorm"

type Repositories struct {
	Users      *UserRepository
	Cycles     *CycleRepository
	Activities *ActivityRepository
	Chats      *ChatRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:      NewUserRepository(database),
		Cycles:     NewCycleRepository(database),
		Activities: NewActivityRepository(database),
		Chats:      NewChatRepository(database),
	}
}
