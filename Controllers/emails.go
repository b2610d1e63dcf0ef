package Controllers

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"strconv"

	"Courier/Models"
	"Courier/validation"

	"github.com/gofiber/fiber/v2"
)

// SendFunc dispatches one message with the given credentials and returns
// the relay's message identifier.
type SendFunc func(Models.EmailConfig, Models.EmailMessage) (string, error)

// EmailController handles the send endpoint and the sent-email log
type EmailController struct {
	Store       *Models.EmailStore
	Send        SendFunc
	MaxFileSize int64
}

// NewEmailController creates a new EmailController
func NewEmailController(store *Models.EmailStore, send SendFunc, maxFileSize int64) *EmailController {
	return &EmailController{Store: store, Send: send, MaxFileSize: maxFileSize}
}

// SendEmail handles POST /api/send-email: parse multipart, check
// credentials, validate the schema, relay, persist, respond.
func (c *EmailController) SendEmail(ctx *fiber.Ctx) error {
	form, err := ctx.MultipartForm()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid multipart form",
		})
	}

	req := Models.EmailRequest{
		To:             formValue(form, "to"),
		CC:             formValue(form, "cc"),
		BCC:            formValue(form, "bcc"),
		Subject:        formValue(form, "subject"),
		Message:        formValue(form, "message"),
		SenderEmail:    formValue(form, "senderEmail"),
		SenderPassword: formValue(form, "senderPassword"),
	}

	// Credentials are checked before schema validation so their absence
	// gets a distinct message.
	if req.SenderEmail == "" || req.SenderPassword == "" {
		credErr := Models.NewRequestError(Models.KindCredentialsMissing,
			"Sender email and password are required")
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": credErr.Error(),
		})
	}

	if err := req.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	files := form.File["attachments"]
	attachments := make([]Models.Attachment, 0, len(files))
	attachmentInfo := make([]Models.AttachmentInfo, 0, len(files))
	for _, header := range files {
		// Unlike the form client, the transport layer rejects an
		// oversized file instead of dropping it.
		if header.Size > c.MaxFileSize {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": fmt.Sprintf("Attachment %s exceeds the maximum allowed size", header.Filename),
			})
		}

		data, err := readAttachment(header)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": fmt.Sprintf("Failed to read attachment %s", header.Filename),
			})
		}

		mimeType := header.Header.Get("Content-Type")
		attachments = append(attachments, Models.Attachment{
			Filename: header.Filename,
			Data:     data,
			MimeType: mimeType,
		})
		attachmentInfo = append(attachmentInfo, Models.AttachmentInfo{
			Filename: header.Filename,
			Size:     header.Size,
			MimeType: mimeType,
		})
	}

	message := Models.EmailMessage{
		To:          validation.SplitAddressList(req.To),
		CC:          validation.SplitAddressList(req.CC),
		BCC:         validation.SplitAddressList(req.BCC),
		Subject:     req.Subject,
		Body:        req.Message,
		IsHTML:      true,
		Attachments: attachments,
	}

	messageID, err := c.Send(Models.GmailConfig(req.SenderEmail, req.SenderPassword), message)
	if err != nil {
		relayErr := Models.NewRequestError(Models.KindRelayFailure, err.Error())
		log.Printf("Error sending email: %v", relayErr)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": fmt.Sprintf("Failed to send email: %v", relayErr),
		})
	}

	if _, err := c.Store.CreateEmail(Models.InsertEmail{
		To:          req.To,
		CC:          req.CC,
		BCC:         req.BCC,
		Subject:     req.Subject,
		Message:     req.Message,
		Attachments: attachmentInfo,
		SenderEmail: req.SenderEmail,
	}); err != nil {
		// Unreachable once the schema has passed; reaching it means a
		// broken contract between handler and store.
		log.Printf("Error storing sent email: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	log.Printf("Email sent to: %s", req.To)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Email sent successfully",
		"result":  fiber.Map{"messageId": messageID},
	})
}

// GetEmails returns every send record in creation order
func (c *EmailController) GetEmails(ctx *fiber.Ctx) error {
	return ctx.JSON(c.Store.GetEmails())
}

// GetEmail returns a single send record by ID
func (c *EmailController) GetEmail(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid email ID"})
	}

	email, ok := c.Store.GetEmailByID(id)
	if !ok {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Email not found"})
	}

	return ctx.JSON(email)
}

func formValue(form *multipart.Form, name string) string {
	values := form.Value[name]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func readAttachment(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}
