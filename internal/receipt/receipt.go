package receipt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"
	"time"

	"github.com/skip2/go-qrcode"

	"garment-orders/internal/models"
	"garment-orders/internal/order/query"
)

// Generator produces pickup receipts: a QR code wrapping an encrypted payload
// the counter scans when the customer collects the garments.
type Generator struct {
	secret []byte
}

func NewGenerator(secret string) *Generator {
	hashed := sha256.Sum256([]byte(secret)) // normalize to 32 bytes
	return &Generator{secret: hashed[:]}
}

type payload struct {
	OrderID  string    `json:"order_id"`
	Name     string    `json:"name"`
	Total    float64   `json:"total"`
	Paid     bool      `json:"paid"`
	IssuedAt time.Time `json:"issued_at"`
}

// PickupQR renders the receipt for an order as a 256px PNG.
func (g *Generator) PickupQR(order models.Order) ([]byte, error) {
	data, err := json.Marshal(payload{
		OrderID:  order.ID,
		Name:     order.Request.Name,
		Total:    query.Normalize(order).EffectiveTotal,
		Paid:     order.Paid,
		IssuedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	encrypted, err := encryptAES(data, g.secret)
	if err != nil {
		return nil, err
	}

	return qrcode.Encode(encrypted, qrcode.Medium, 256)
}

func encryptAES(data []byte, key []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	ciphertext := make([]byte, aes.BlockSize+len(data))
	iv := ciphertext[:aes.BlockSize]

	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", err
	}

	stream := cipher.NewCFBEncrypter(block, iv)
	stream.XORKeyStream(ciphertext[aes.BlockSize:], data)

	return base64.URLEncoding.EncodeToString(ciphertext), nil
}
