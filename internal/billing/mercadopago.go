package billing

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/AustralVet/clinic-scheduler/internal/models"
)

// Client genera preferencias de pago de Mercado Pago para el cobro de
// consultas. Es opcional: sin access token la clínica cobra por caja.
type Client struct {
	prefs preference.Client
}

func New(accessToken string) (*Client, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &Client{prefs: preference.NewClient(cfg)}, nil
}

// ConsultationPreference crea la preferencia de pago y devuelve la URL
// de checkout (init point).
func (c *Client) ConsultationPreference(
	ctx context.Context,
	cons *models.Consultation,
	petName string,
) (string, error) {

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:       fmt.Sprintf("Consulta veterinaria — %s", petName),
				Description: cons.Diagnosis,
				Quantity:    1,
				UnitPrice:   cons.Cost,
				CurrencyID:  "CLP",
			},
		},
		ExternalReference: fmt.Sprintf("consultation-%d", cons.ID),
	}

	resp, err := c.prefs.Create(ctx, req)
	if err != nil {
		return "", err
	}

	return resp.InitPoint, nil
}
