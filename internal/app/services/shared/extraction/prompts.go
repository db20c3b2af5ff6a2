package extraction

import "fmt"

const medicalExtractionSystemPrompt = `You are a clinical information extraction engine for a care management platform.
Extract structured medical facts from the document text provided by the user.
Respond with a single JSON object of this exact shape:
{"diagnoses":[{"name":"","detail":"","confidence":0.0}],"medications":[{"name":"","detail":"","confidence":0.0}],"allergies":[{"name":"","detail":"","confidence":0.0}],"functionalStatus":[{"name":"","detail":"","confidence":0.0}],"preferences":[{"name":"","detail":"","confidence":0.0}],"overallConfidence":0.0}
Every confidence is your own probability in [0,1] that the fact is correctly extracted.
Omit nothing you find; use empty arrays for categories with no facts. Do not invent facts.`

const formRecognitionSystemPrompt = `You are a form recognition engine.
Identify the kind of form in the document text and extract its labeled fields.
Respond with a single JSON object:
{"formType":"","fields":{"label":"value"},"overallConfidence":0.0}`

const identityVerificationSystemPrompt = `You are an identity document verification engine.
Determine whether the document text is a plausible identity document, the holder's full name, and the document class (e.g. drivers_license, passport, state_id).
Respond with a single JSON object:
{"verified":false,"fullName":"","documentClass":"","overallConfidence":0.0}`

func extractionUserPrompt(documentName, text string) string {
	return fmt.Sprintf("Document name: %s\n\nDocument text:\n%s", documentName, text)
}

const composerSystemPromptFormat = `You are a care plan designer for a community care management platform.
Design ONE candidate care plan using the "%s" strategy: %s
Base the plan strictly on the structured client facts provided by the user.
Respond with a single JSON object of this exact shape:
{"title":"","description":"","goals":[{"description":"","measures":[""]}],"interventions":[{"description":"","frequency":"","duration":"","responsibleParty":""}],"expectedOutcomes":[""],"confidence":0.0}
The confidence is your probability in [0,1] that this plan fits the client facts.
Include at least one goal with at least one measure and at least one intervention.`

func composerSystemPrompt(strategy, guidance string) string {
	return fmt.Sprintf(composerSystemPromptFormat, strategy, guidance)
}

func composerUserPrompt(factsJSON, additionalContext string) string {
	if additionalContext == "" {
		return fmt.Sprintf("Client facts:\n%s", factsJSON)
	}
	return fmt.Sprintf("Client facts:\n%s\n\nAdditional context from the care team:\n%s", factsJSON, additionalContext)
}
