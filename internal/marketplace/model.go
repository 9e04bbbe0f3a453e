package marketplace

import (
	"github.com/valeconecta/conecta/internal/models"
	"github.com/valeconecta/conecta/internal/reputation"
	"github.com/valeconecta/conecta/internal/utils"
)

// ProfessionalView is a professional with the reputation badge the app
// shows next to the name. Credits are only set for the professional's own
// view.
type ProfessionalView struct {
	models.Professional
	Credits *int            `json:"credits,omitempty"`
	Tier    reputation.Tier `json:"tier"`
}

// NewProfessionalView is the owner's view, credits and pix key included.
func NewProfessionalView(p models.Professional) ProfessionalView {
	credits := p.Credits
	return ProfessionalView{
		Professional: p,
		Credits:      &credits,
		Tier:         reputation.Classify(p.Rating, p.ReviewCount),
	}
}

// PublicProfessionalView is what clients and visitors see.
func PublicProfessionalView(p models.Professional) ProfessionalView {
	p.PixKey = ""
	return ProfessionalView{
		Professional: p,
		Tier:         reputation.Classify(p.Rating, p.ReviewCount),
	}
}

// RequestView is a service request as seen by one actor. The phone is
// masked unless the actor owns the request, is an admin, or unlocked it.
type RequestView struct {
	models.ServiceRequest
	ContactPhone string `json:"contact_phone"`
	PhoneMasked  bool   `json:"phone_masked"`
	WhatsAppLink string `json:"whatsapp_link,omitempty"`
	ClientName   string `json:"client_name"`
	Unlocked     bool   `json:"unlocked"`
	UnlockCost   int    `json:"unlock_cost"`
}

func newRequestView(r models.ServiceRequest, actor models.Actor, clientName string, unlockCost int) RequestView {
	owner := actor.Role == models.RoleClient && actor.ID == r.ClientID
	unlocked := actor.Role == models.RolePro && r.IsUnlockedBy(actor.ID)
	visible := owner || unlocked || actor.Role == models.RoleAdmin

	v := RequestView{
		ServiceRequest: r,
		ClientName:     clientName,
		Unlocked:       unlocked,
		UnlockCost:     unlockCost,
	}
	if visible {
		v.ContactPhone = r.ContactPhone
		v.WhatsAppLink = utils.WhatsAppLink(r.ContactPhone)
	} else {
		v.ContactPhone = utils.MaskPhone(r.ContactPhone)
		v.PhoneMasked = true
	}

	if !owner && actor.Role != models.RoleAdmin {
		v.UnlockedBy = nil
	}

	switch {
	case owner, actor.Role == models.RoleAdmin:
	case actor.Role == models.RolePro:
		own := []models.Proposal{}
		for _, p := range r.Proposals {
			if p.ProID == actor.ID {
				own = append(own, p)
			}
		}
		v.Proposals = own
	default:
		v.Proposals = nil
	}
	return v
}
