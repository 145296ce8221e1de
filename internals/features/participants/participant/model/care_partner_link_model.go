// file: internals/features/participants/participant/model/care_partner_link_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CarePartnerLinkModel attaches a care partner (itself a participant record
// with type "Care Partner") to a participant.
type CarePartnerLinkModel struct {
	// PK
	LinkID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:link_id" json:"link_id"`

	// FKs — both sides are participants rows
	LinkParticipantID uuid.UUID `gorm:"type:uuid;not null;column:link_participant_id;uniqueIndex:uq_link_pair;index:idx_link_participant" json:"participant_id"`
	LinkCarePartnerID uuid.UUID `gorm:"type:uuid;not null;column:link_care_partner_id;uniqueIndex:uq_link_pair;index:idx_link_care_partner" json:"care_partner_id"`

	LinkRelationship *string `gorm:"type:varchar(60);column:link_relationship" json:"relationship,omitempty"`

	// Loaded on the participant aggregate so the portal can show names
	CarePartner *ParticipantModel `gorm:"foreignKey:LinkCarePartnerID;references:ParticipantID" json:"carepartner,omitempty"`

	// Timestamps
	LinkCreatedAt time.Time      `gorm:"column:link_created_at;autoCreateTime" json:"created_at"`
	LinkDeletedAt gorm.DeletedAt `gorm:"column:link_deleted_at;index" json:"deleted_at,omitempty"`
}

func (CarePartnerLinkModel) TableName() string {
	return "participant_care_partners"
}
