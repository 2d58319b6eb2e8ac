package model

type Workshop struct {
	BaseModel
	WorkshopName string `db:"workshop_name" json:"workshop_name"`
	UserID       string `db:"user_id" json:"user_id"`
}
