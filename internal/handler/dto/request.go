package dto

type RegisterSlotRequest struct {
	ActivityID     string `json:"activity_id" binding:"required"`
	Date           string `json:"date" binding:"required"`
	TimeOfDay      string `json:"time_of_day" binding:"required,oneof=morning afternoon evening"`
	Intensity      string `json:"intensity" binding:"required,oneof=casual serious"`
	OwnerGroupSize int    `json:"owner_group_size" binding:"required,gt=0"`
}
