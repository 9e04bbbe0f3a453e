package alerts

import (
	"fmt"

	"github.com/valeconecta/conecta/internal/models"
)

// BookingRequested tells the professional a client asked for a booking.
func (n *Notifier) BookingRequested(b models.Booking) {
	n.Enqueue(Event{
		Kind:      KindBookingRequested,
		UserID:    b.ProID,
		Title:     "Nova solicitação de agendamento",
		Body:      fmt.Sprintf("%s quer agendar %s para %s.", b.ClientName, b.Service, b.Date),
		Reference: b.ID,
	})
}

// BookingChanged notifies the party that did not fire the transition.
func (n *Notifier) BookingChanged(b models.Booking) {
	ev := Event{Reference: b.ID}
	switch b.Status {
	case models.BookingAccepted:
		ev.Kind, ev.UserID = KindBookingAccepted, b.ClientID
		ev.Title = "Agendamento aceito"
		ev.Body = fmt.Sprintf("%s aceitou seu pedido de %s. Conclua o pagamento para confirmar.", b.ProName, b.Service)
	case models.BookingRejected:
		ev.Kind, ev.UserID = KindBookingRejected, b.ClientID
		ev.Title = "Agendamento recusado"
		ev.Body = fmt.Sprintf("%s não pode atender seu pedido de %s.", b.ProName, b.Service)
	case models.BookingPaid:
		ev.Kind, ev.UserID = KindBookingPaid, b.ProID
		ev.Title = "Pagamento confirmado"
		ev.Body = fmt.Sprintf("%s pagou R$ %.2f pelo serviço de %s.", b.ClientName, b.Price, b.Service)
	case models.BookingCompleted:
		ev.Kind, ev.UserID = KindBookingCompleted, b.ClientID
		ev.Title = "Serviço concluído"
		ev.Body = fmt.Sprintf("%s marcou o serviço como concluído. Confirme e avalie.", b.ProName)
	case models.BookingFinished:
		ev.Kind, ev.UserID = KindBookingFinished, b.ProID
		ev.Title = "Serviço finalizado"
		ev.Body = fmt.Sprintf("%s confirmou a conclusão do serviço.", b.ClientName)
	default:
		return
	}
	n.Enqueue(ev)
}

func (n *Notifier) BookingReviewed(b models.Booking, r models.Review) {
	n.Enqueue(Event{
		Kind:      KindBookingReviewed,
		UserID:    b.ProID,
		Title:     "Nova avaliação",
		Body:      fmt.Sprintf("%s deu nota %d ao seu serviço.", r.Author, r.Rating),
		Reference: b.ID,
	})
}

// ContactUnlocked confirms the unlock to the professional.
func (n *Notifier) ContactUnlocked(proID string, r models.ServiceRequest, tx models.CreditTransaction) {
	n.Enqueue(Event{
		Kind:      KindContactUnlocked,
		UserID:    proID,
		Title:     "Contato desbloqueado",
		Body:      fmt.Sprintf("Você usou %d créditos para ver o contato do pedido de %s. Saldo: %d.", -tx.Amount, r.Category, tx.BalanceAfter),
		Reference: r.ID,
	})
}

func (n *Notifier) ProposalReceived(r models.ServiceRequest, p models.Proposal, proName string) {
	n.Enqueue(Event{
		Kind:      KindProposalReceived,
		UserID:    r.ClientID,
		Title:     "Nova proposta",
		Body:      fmt.Sprintf("%s enviou uma proposta de R$ %.2f para seu pedido de %s.", proName, p.Price, r.Category),
		Reference: r.ID,
	})
}

func (n *Notifier) CreditsPurchased(tx models.CreditTransaction) {
	n.Enqueue(Event{
		Kind:      KindCreditsPurchased,
		UserID:    tx.ProID,
		Title:     "Créditos adicionados",
		Body:      fmt.Sprintf("%d créditos adicionados. Saldo: %d.", tx.Amount, tx.BalanceAfter),
		Reference: tx.ID,
	})
}

// VerificationSubmitted puts a note in the admin inbox.
func (n *Notifier) VerificationSubmitted(adminID string, p models.Professional) {
	n.Enqueue(Event{
		Kind:      KindVerificationSubmitted,
		UserID:    adminID,
		Title:     "Documentos para verificar",
		Body:      fmt.Sprintf("%s enviou documentos para verificação.", p.Name),
		Reference: p.ID,
	})
}

func (n *Notifier) VerificationReviewed(p models.Professional) {
	body := "Seus documentos foram aprovados. Seu perfil agora exibe o selo de verificado."
	if !p.Verified {
		body = "Seus documentos não foram aprovados. Envie novamente para uma nova análise."
	}
	n.Enqueue(Event{
		Kind:      KindVerificationReviewed,
		UserID:    p.ID,
		Title:     "Verificação analisada",
		Body:      body,
		Reference: p.ID,
	})
}
