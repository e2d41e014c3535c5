package xlsexport

import (
	"bytes"
	"strings"
	dbmodels "tracker-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportTaskList(list []dbmodels.Task) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var taskHeaders = []string{"Название", "Описание", "Исполнитель", "Статус", "Приоритет", "Отдел", "Срок", "Теги"}

func (i impl) ExportTaskList(list []dbmodels.Task) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, taskHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeTaskData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Задачи")
	return f.WriteToBuffer()
}

func writeTaskData(f *excelize.File, sheet string, list []dbmodels.Task, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(taskHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Название"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Name); err != nil {
			return row, err
		}

		// "Описание"
		col++
		if err := writeColumn(f, sheet, col, row, item.Description); err != nil {
			return row, err
		}

		// "Исполнитель"
		col++
		if item.Assignee != nil {
			if err := writeColumn(f, sheet, col, row, item.Assignee.GetFullName()); err != nil {
				return row, err
			}
		}

		// "Статус"
		col++
		if err := writeColumn(f, sheet, col, row, item.Status.ToHuman()); err != nil {
			return row, err
		}

		// "Приоритет"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Priority)); err != nil {
			return row, err
		}

		// "Отдел"
		col++
		if err := writeColumn(f, sheet, col, row, item.Department); err != nil {
			return row, err
		}

		// "Срок"
		col++
		if item.DueDate != nil {
			if err := writeColumn(f, sheet, col, row, item.DueDate.Format("02.01.2006")); err != nil {
				return row, err
			}
		}

		// "Теги"
		col++
		if err := writeColumn(f, sheet, col, row, strings.Join(item.Tags, ", ")); err != nil {
			return row, err
		}
	}
	return row, nil
}
