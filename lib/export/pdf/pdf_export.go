package pdfexport

import (
	"bytes"
	"fmt"
	dbmodels "tracker-backend/models/db"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// GenerateApprovalSummary формирует pdf с карточкой заявки на
// согласование и хронологией решений
func GenerateApprovalSummary(rec dbmodels.ApprovalRequest, history []dbmodels.ApprovalHistory) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateApprovalSummary panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	pdf.SetFont("Arial", "", 14)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	_, lineHt := pdf.GetFontSize()
	requestedBy := ""
	if rec.RequestedBy != nil {
		requestedBy = rec.RequestedBy.GetFullName()
	}
	htmlStr := fmt.Sprintf("<b>%v</b><br>", rec.Title) +
		fmt.Sprintf("Статус: %v<br>", rec.Status.ToHuman()) +
		fmt.Sprintf("Автор: %v<br>", requestedBy) +
		fmt.Sprintf("Создана: %v<br>", rec.CreatedAt.Format("02.01.2006 15:04"))
	if rec.DueDate != nil {
		htmlStr += fmt.Sprintf("Срок: %v<br>", rec.DueDate.Format("02.01.2006"))
	}
	if rec.Description != "" {
		htmlStr += fmt.Sprintf("<br>%v<br>", rec.Description)
	}
	html := pdf.HTMLBasicNew()
	html.Write(lineHt, htmlStr)

	if len(history) > 0 {
		pdf.SetY(pdf.GetY() + 10)
		html.Write(lineHt, "<b>Хронология решений</b><br>")
		for _, item := range history {
			userName := item.UserID
			if item.User != nil {
				userName = item.User.GetFullName()
			}
			line := fmt.Sprintf("%v - %v: %v", item.CreatedAt.Format("02.01.2006 15:04"), userName, item.Action.ToHuman())
			if item.Comment != "" {
				line += fmt.Sprintf(" (%v)", item.Comment)
			}
			html.Write(lineHt, line+"<br>")
		}
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
