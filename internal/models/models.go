package models

import (
	"time"
)

// Статусы объявления
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Роли пользователей
const (
	RoleUser      = "user"
	RoleModerator = "moderator"
)

type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
	Role         string `json:"role"`
}

// UserInfo - снимок владельца на момент создания записи.
// Не обновляется при изменении пользователя.
type UserInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Info - денормализованный снимок пользователя
func (u *User) Info() UserInfo {
	return UserInfo{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

type Ad struct {
	ID          string    `json:"id"`
	Make        string    `json:"make"`
	Model       string    `json:"model"`
	Year        int       `json:"year"`
	Price       float64   `json:"price"`
	Mileage     int       `json:"mileage"`
	Color       string    `json:"color"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AdRecord - объявление вместе со снимком владельца
type AdRecord struct {
	User UserInfo `json:"user"`
	Ad   Ad       `json:"ad"`
}

// PurchaseRecord - одна покупка; carData хранит снимок машины на момент покупки
type PurchaseRecord struct {
	ID           string    `json:"id"`
	CarID        string    `json:"carId"`
	CarData      Ad        `json:"carData"`
	PurchaseDate time.Time `json:"purchaseDate"`
}

// PurchaseGroup - все покупки одного пользователя
type PurchaseGroup struct {
	User      UserInfo         `json:"user"`
	Purchases []PurchaseRecord `json:"purchases"`
}

// Document - корневой объект файла данных, перезаписывается целиком
type Document struct {
	Users     []User          `json:"users"`
	Ads       []AdRecord      `json:"ads"`
	Purchases []PurchaseGroup `json:"purchases"`
}

// NewDocument - пустой документ с инициализированными срезами,
// чтобы в файле всегда были массивы, а не null
func NewDocument() *Document {
	return &Document{
		Users:     []User{},
		Ads:       []AdRecord{},
		Purchases: []PurchaseGroup{},
	}
}

type Counts struct {
	Users     int `json:"users"`
	Ads       int `json:"ads"`
	Purchases int `json:"purchases"`
}
