package dto

type CreateWorkshopInput struct {
	UserID       string
	WorkshopName string
}

type RenameWorkshopInput struct {
	ID           string
	UserID       string
	WorkshopName string
}
