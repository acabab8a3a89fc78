// Package schema holds the static survey schema: the mapping from the form's
// long question headers to short canonical field names, the required-field
// set, and the fixed denylists used to clean free-form answers. All of it is
// immutable configuration defined at process start.
package schema

// Canonical field names used throughout the pipeline.
const (
	FieldTimestamp    = "timestamp"
	FieldEmail        = "email"
	FieldName         = "name"
	FieldCourse       = "course"
	FieldEnrollmentID = "enrollment_id"
	FieldChoice1      = "choice_1"
	FieldChoice2      = "choice_2"
	FieldChoice3      = "choice_3"
	FieldAvailability = "availability"
	FieldMotivation   = "motivation"
	FieldMotivation2  = "motivation_2"
	FieldMotivation3  = "motivation_3"
	FieldMaxCourses   = "max_courses"
	FieldExtraMotives = "extra_motivation"
	FieldHonestyAck   = "honesty_ack"
	FieldPrereqAck    = "prereq_ack"
	FieldNotes        = "notes"

	// Derived fields, not present in the form.
	FieldEnrollYear = "enrollment_year"
	FieldRank       = "rank"
	FieldChoice     = "choice"
)

// FieldMap maps the form's long question headers to canonical field names.
// Keys must match the export headers byte-for-byte, embedded punctuation and
// newlines included; unmapped headers pass through untouched.
var FieldMap = map[string]string{
	"Carimbo de data/hora":  FieldTimestamp,
	"Endereço de e-mail":    FieldEmail,
	"Nome completo":         FieldName,
	"Curso":                 FieldCourse,
	"Número de Matrícula":   FieldEnrollmentID,
	"1ª Prioridade: Qual disciplina você mais tem interesse em cursar nas férias?":                  FieldChoice1,
	"2ª Prioridade: Qual seria a SEGUNDA disciplina você mais tem interesse em cursar nas férias?":  FieldChoice2,
	"3ª Prioridade: Qual seria a TERCEIRA disciplina você mais tem interesse em cursar nas férias?": FieldChoice3,
	"No geral, quais turnos você teria disponibilidade para cursar disciplinas de férias de verão?": FieldAvailability,
	"(1ª Disciplina) Algum dos casos baixo descreve seu interesse em cursar essa disciplina nas férias? Quais?": FieldMotivation,
	"(2ª Disciplina) Algum dos casos baixo descreve seu interesse em cursar essa disciplina nas férias? Quais?": FieldMotivation2,
	"(3ª Disciplina) Algum dos casos baixo descreve seu interesse em cursar essa disciplina nas férias? Quais?": FieldMotivation3,
	"Qual o máximo de matérias que você gostaria de cursar durante o semestre de verão (2025.4)?":               FieldMaxCourses,
	"Há outros fatores que motiva seu interesse em cursar essas disciplinas nas férias? ":                       FieldExtraMotives,
	"Seja sincero": FieldHonestyAck,
	"Por favor, consulte sua matriz curricular para garantir que você cumpre os pré-requisitos para cursar a disciplina!": FieldPrereqAck,
	"Há mais alguma observação que gostaria de compartilhar?\nOpcional. Ex: \"não posso ter aulas em fevereiro\", \"troquei de matriz e agora tá bem complicado pois...\" , \"tenho preferencia pelo professor(a) tal, mas dependendo também poderia com tal\", \"não tenho preferencia por horário e professor, estou desesperado(a)!\".\n\nLembre-se: quanto menos restritivo e mais sincero, melhor.": FieldNotes,
}

// RequiredFields must all be present after column normalization or the
// dataset is rejected.
var RequiredFields = []string{
	FieldCourse,
	FieldAvailability,
	FieldMotivation,
	FieldEnrollmentID,
	FieldChoice1,
	FieldChoice2,
	FieldChoice3,
}

// RankFields are the ranked-choice columns, in melt order.
var RankFields = []string{FieldChoice1, FieldChoice2, FieldChoice3}

// IdentityFields are carried unchanged from the wide table into the long one.
var IdentityFields = []string{
	FieldCourse,
	FieldAvailability,
	FieldMotivation,
	FieldEnrollmentID,
	FieldEnrollYear,
}

// PlaceholderChoices are the form's "no Nth choice" boilerplate answers.
// They are blanked out of the rank columns before reshaping so that an
// explicit non-answer counts the same as a blank one.
var PlaceholderChoices = []string{
	"NÃO TENHO UMA 1 DISCIPLINA DE INTERESSE",
	"NÃO TENHO UMA 2 DISCIPLINA DE INTERESSE",
	"NÃO TENHO UMA 3 DISCIPLINA DE INTERESSE",
}

// MotivationDenylist lists generic or accidentally-captured motivation
// answers that are excluded from the motivation aggregate. Matching is
// case-insensitive and diacritic-folded. Known limitation: new boilerplate
// phrasings will leak through until added here.
var MotivationDenylist = []string{
	"outros",
	"outro",
	"não tenho interesse",
	"há outros fatores que motiva seu interesse em cursar essas disciplinas nas férias? há mais alguma observação que gostaria de compartilhar?",
	"opcional. ex: \"não posso ter aulas em fevereiro\", \"troquei de matriz e agora tá bem complicado pois...\" , \"tenho preferencia pelo professor(a) tal, mas dependendo também poderia com tal\", \"não tenho preferencia por horário e professor, estou desesperado(a)!\".",
	"seja sincero",
}
