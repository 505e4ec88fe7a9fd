package entities

import "gorm.io/datatypes"

// SystemRequirementType is a hardware tier (Low, Medium, High).
// Read-only lookup data.
type SystemRequirementType struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"column:name"`
}

func (SystemRequirementType) TableName() string {
	return "system_requirement_types"
}

// SystemRequirement is the hardware profile of one game for one tier.
type SystemRequirement struct {
	ID        int64                   `gorm:"primaryKey"`
	GameID    int64                   `gorm:"column:game_id"`
	TypeID    int64                   `gorm:"column:system_requirement_type_id"`
	StorageGB int                     `gorm:"column:storage_gb"`
	RAMGB     int                     `gorm:"column:ram_gb"`
	CPUGHz    datatypes.Null[float64] `gorm:"column:cpu_ghz"`
	GPUTflops datatypes.Null[float64] `gorm:"column:gpu_tflops"`
	VRAMGB    datatypes.Null[int64]   `gorm:"column:vram_gb"`

	RequirementType datatypes.Null[string] `gorm:"->;column:requirement_type"`
	GameTitle       datatypes.Null[string] `gorm:"->;column:game_title"`
}

func (SystemRequirement) TableName() string {
	return "system_requirements"
}

func NewSystemRequirement(gameID, typeID int64, storageGB, ramGB int, cpuGHz, gpuTflops datatypes.Null[float64], vramGB datatypes.Null[int64]) (SystemRequirement, error) {
	r := SystemRequirement{
		GameID:    gameID,
		TypeID:    typeID,
		StorageGB: storageGB,
		RAMGB:     ramGB,
		CPUGHz:    cpuGHz,
		GPUTflops: gpuTflops,
		VRAMGB:    vramGB,
	}
	if err := r.Validate(); err != nil {
		return SystemRequirement{}, err
	}
	return r, nil
}

func (r SystemRequirement) Validate() error {
	const entity = "system requirement"
	switch {
	case r.StorageGB <= 0:
		return invalid(entity, "storage", "must be greater than 0 GB")
	case r.RAMGB <= 0:
		return invalid(entity, "RAM", "must be greater than 0 GB")
	case r.CPUGHz.Valid && r.CPUGHz.V <= 0:
		return invalid(entity, "CPU GHz", "must be greater than 0")
	case r.GPUTflops.Valid && r.GPUTflops.V <= 0:
		return invalid(entity, "GPU TFLOPS", "must be greater than 0")
	case r.VRAMGB.Valid && r.VRAMGB.V < 0:
		return invalid(entity, "VRAM", "cannot be negative")
	}
	return nil
}

func (r SystemRequirement) WithID(id int64) SystemRequirement {
	r.ID = id
	return r
}
