// ABOUTME: Declarative field visibility for the activity form
// ABOUTME: Field set and required-ness derive from category/type/access-type
package form

import "ptrack/models"

// Field keys. Renderers use these to decide what to show; Validate uses the
// same set to decide what must be non-empty.
const (
	FieldDate    = "date"
	FieldType    = "type"
	FieldAccount = "account"
	FieldRep     = "salesRep"

	FieldIndustry = "industry"
	FieldProject  = "project"
	FieldSFDC     = "sfdcLink"
	FieldUseCases = "useCases"
	FieldProducts = "products"
	FieldChannels = "channels"

	FieldCallType        = "callType"
	FieldCallDescription = "callDescription"

	FieldSOWLink = "sowLink"

	FieldAccessType   = "accessType"
	FieldUseCaseDesc  = "useCaseDescription"
	FieldPOCStart     = "pocStartDate"
	FieldPOCEnd       = "pocEndDate"
	FieldDemoEnv      = "demoEnvironment"
	FieldBotTrigger   = "botTriggerUrl"

	FieldRFxType  = "rfxType"
	FieldDeadline = "submissionDeadline"
	FieldFolder   = "googleFolderLink"
	FieldRFxNotes = "rfxNotes"

	FieldTimeSpent    = "timeSpent"
	FieldActivityName = "activityName"
	FieldTopic        = "topic"
	FieldDescription  = "description"
)

type Field struct {
	Key      string
	Required bool
}

// VisibleFields returns the exact field set for the given form state. The
// required flag doubles as the submit-time non-empty constraint, so hiding a
// field also drops its constraint.
func VisibleFields(category, activityType, accessType string) []Field {
	fields := []Field{
		{FieldDate, true},
		{FieldType, true},
	}

	switch category {
	case models.CategoryInternal:
		fields = append(fields,
			Field{FieldTimeSpent, false},
			Field{FieldActivityName, false},
			Field{FieldTopic, true},
			Field{FieldDescription, false},
		)

	case models.CategoryExternal:
		fields = append(fields,
			Field{FieldAccount, true},
			Field{FieldRep, true},
			Field{FieldIndustry, true},
			Field{FieldProject, true},
			Field{FieldSFDC, false},
			Field{FieldUseCases, false},
			Field{FieldProducts, true},
			Field{FieldChannels, true},
		)

		switch activityType {
		case models.TypeCustomerCall:
			fields = append(fields,
				Field{FieldCallType, true},
				Field{FieldCallDescription, true},
			)
		case models.TypeSOW:
			fields = append(fields, Field{FieldSOWLink, true})
		case models.TypePOC:
			fields = append(fields,
				Field{FieldAccessType, true},
				Field{FieldUseCaseDesc, true},
			)
			if accessType == models.AccessSandbox {
				fields = append(fields,
					Field{FieldPOCStart, true},
					Field{FieldPOCEnd, true},
				)
			} else if models.IsCustomPOC(accessType) {
				fields = append(fields,
					Field{FieldDemoEnv, false},
					Field{FieldBotTrigger, false},
				)
			}
		case models.TypeRFx:
			fields = append(fields,
				Field{FieldRFxType, true},
				Field{FieldDeadline, true},
				Field{FieldFolder, false},
				Field{FieldRFxNotes, false},
			)
		case models.TypePricing:
			// No extra fields.
		}
	}

	return fields
}

// Visible reports whether key appears in the VisibleFields set.
func Visible(category, activityType, accessType, key string) bool {
	for _, f := range VisibleFields(category, activityType, accessType) {
		if f.Key == key {
			return true
		}
	}
	return false
}
