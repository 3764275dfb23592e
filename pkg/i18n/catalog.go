package i18n

var catalogs = map[Locale]map[string]string{
	LocaleEN: {
		"report.title":                 "Water Treatment Report",
		"report.period":                "Period",
		"report.period.weekly":         "Weekly report from %s to %s",
		"report.period.monthly":        "Monthly report from %s to %s",
		"report.period.quarterly":      "Quarterly report from %s to %s",
		"report.period.custom":         "Report from %s to %s",
		"report.generated_at":          "Generated at",
		"identification.title":         "Identification",
		"identification.client":        "Client",
		"identification.company":       "Company",
		"identification.document":      "Document",
		"identification.address":       "Address",
		"identification.contact":       "Contact",
		"scope.title":                  "Scope",
		"scope.systems":                "Systems covered",
		"scope.empty":                  "No systems in scope",
		"systems.title":                "Systems",
		"systems.name":                 "Name",
		"systems.type":                 "Type",
		"systems.status":               "Status",
		"systems.description":          "Description",
		"systems.stages":               "Process stages",
		"systems.photos":               "Photos",
		"systems.empty":                "No systems registered for this period",
		"systems.status.active":        "Active",
		"systems.status.inactive":      "Inactive",
		"systems.status.maintenance":   "Under maintenance",
		"analyses.title":               "Analyses",
		"analyses.field":               "Field monitoring",
		"analyses.laboratory":          "Laboratory analyses",
		"analyses.overview":            "Overview",
		"analyses.detailed":            "Detailed readings",
		"analyses.date":                "Date",
		"analyses.system":              "System",
		"analyses.operator":            "Operator",
		"analyses.readings":            "Readings",
		"analyses.out_of_range":        "Out of range",
		"analyses.parameter":           "Parameter",
		"analyses.observations":        "Observations",
		"analyses.charts":              "Parameter charts",
		"analyses.chart_unavailable":   "Chart unavailable",
		"analyses.empty":               "No analyses recorded for this period",
		"inspections.title":            "Inspections",
		"inspections.date":             "Date",
		"inspections.system":           "System",
		"inspections.inspector":        "Inspector",
		"inspections.status":           "Status",
		"inspections.compliant":        "Compliant",
		"inspections.non_compliant":    "Non-compliant",
		"inspections.item":             "Checklist item",
		"inspections.note":             "Note",
		"inspections.conclusion":       "Conclusion",
		"inspections.photos":           "Photos",
		"inspections.empty":            "No inspections recorded for this period",
		"inspections.empty_nc":         "No non-conformities found in this period",
		"status.C":                     "Compliant",
		"status.NC":                    "Non-compliant",
		"status.NA":                    "Not applicable",
		"status.NV":                    "Not verified",
		"occurrences.title":            "Occurrences",
		"occurrences.incident":         "Incident",
		"occurrences.system":           "System",
		"occurrences.priority":         "Priority",
		"occurrences.status":           "Status",
		"occurrences.created":          "Created",
		"occurrences.resolved":         "Resolved",
		"occurrences.unresolved":       "Unresolved",
		"occurrences.timeline":         "Recent incidents",
		"occurrences.empty":            "No occurrences registered for this period",
		"priority.low":                 "Low",
		"priority.medium":              "Medium",
		"priority.high":                "High",
		"priority.critical":            "Critical",
		"incident_status.open":         "Open",
		"incident_status.in_progress":  "In progress",
		"incident_status.resolved":     "Resolved",
		"incident_status.closed":       "Closed",
		"conclusion.title":             "Conclusion",
		"conclusion.systems":           "Systems",
		"conclusion.readings":          "Readings",
		"conclusion.inspections":       "Inspections",
		"conclusion.incidents":         "Incidents",
		"conclusion.out_of_range_warn": "%d readings were outside specification limits in this period",
		"signature.title":              "Signature",
		"signature.name":               "Name",
		"signature.role":               "Role",
		"signature.registration":       "Registration",
		"signature.date":               "Date",
		"attachments.title":            "Attachments",
		"attachments.placeholder":      "Attachments are appended after this page.",
		"chart.max":                    "Max: %s",
		"chart.min":                    "Min: %s",
	},
	LocalePTBR: {
		"report.title":                 "Relatório de Tratamento de Água",
		"report.period":                "Período",
		"report.period.weekly":         "Relatório semanal de %s a %s",
		"report.period.monthly":        "Relatório mensal de %s a %s",
		"report.period.quarterly":      "Relatório trimestral de %s a %s",
		"report.period.custom":         "Relatório de %s a %s",
		"report.generated_at":          "Gerado em",
		"identification.title":         "Identificação",
		"identification.client":        "Cliente",
		"identification.company":       "Empresa",
		"identification.document":      "Documento",
		"identification.address":       "Endereço",
		"identification.contact":       "Contato",
		"scope.title":                  "Escopo",
		"scope.systems":                "Sistemas contemplados",
		"scope.empty":                  "Nenhum sistema no escopo",
		"systems.title":                "Sistemas",
		"systems.name":                 "Nome",
		"systems.type":                 "Tipo",
		"systems.status":               "Situação",
		"systems.description":          "Descrição",
		"systems.stages":               "Etapas do processo",
		"systems.photos":               "Fotos",
		"systems.empty":                "Nenhum sistema cadastrado no período",
		"systems.status.active":        "Ativo",
		"systems.status.inactive":      "Inativo",
		"systems.status.maintenance":   "Em manutenção",
		"analyses.title":               "Análises",
		"analyses.field":               "Monitoramento de campo",
		"analyses.laboratory":          "Análises laboratoriais",
		"analyses.overview":            "Visão geral",
		"analyses.detailed":            "Leituras detalhadas",
		"analyses.date":                "Data",
		"analyses.system":              "Sistema",
		"analyses.operator":            "Operador",
		"analyses.readings":            "Leituras",
		"analyses.out_of_range":        "Fora da faixa",
		"analyses.parameter":           "Parâmetro",
		"analyses.observations":        "Observações",
		"analyses.charts":              "Gráficos por parâmetro",
		"analyses.chart_unavailable":   "Gráfico indisponível",
		"analyses.empty":               "Nenhuma análise registrada no período",
		"inspections.title":            "Inspeções",
		"inspections.date":             "Data",
		"inspections.system":           "Sistema",
		"inspections.inspector":        "Inspetor",
		"inspections.status":           "Situação",
		"inspections.compliant":        "Conforme",
		"inspections.non_compliant":    "Não conforme",
		"inspections.item":             "Item de verificação",
		"inspections.note":             "Observação",
		"inspections.conclusion":       "Conclusão",
		"inspections.photos":           "Fotos",
		"inspections.empty":            "Nenhuma inspeção registrada no período",
		"inspections.empty_nc":         "Nenhuma não conformidade encontrada no período",
		"status.C":                     "Conforme",
		"status.NC":                    "Não conforme",
		"status.NA":                    "Não aplicável",
		"status.NV":                    "Não verificado",
		"occurrences.title":            "Ocorrências",
		"occurrences.incident":         "Ocorrência",
		"occurrences.system":           "Sistema",
		"occurrences.priority":         "Prioridade",
		"occurrences.status":           "Situação",
		"occurrences.created":          "Aberta em",
		"occurrences.resolved":         "Resolvida em",
		"occurrences.unresolved":       "Não resolvida",
		"occurrences.timeline":         "Ocorrências recentes",
		"occurrences.empty":            "Nenhuma ocorrência registrada no período",
		"priority.low":                 "Baixa",
		"priority.medium":              "Média",
		"priority.high":                "Alta",
		"priority.critical":            "Crítica",
		"incident_status.open":         "Aberta",
		"incident_status.in_progress":  "Em andamento",
		"incident_status.resolved":     "Resolvida",
		"incident_status.closed":       "Encerrada",
		"conclusion.title":             "Conclusão",
		"conclusion.systems":           "Sistemas",
		"conclusion.readings":          "Leituras",
		"conclusion.inspections":       "Inspeções",
		"conclusion.incidents":         "Ocorrências",
		"conclusion.out_of_range_warn": "%d leituras ficaram fora dos limites de especificação no período",
		"signature.title":              "Assinatura",
		"signature.name":               "Nome",
		"signature.role":               "Função",
		"signature.registration":       "Registro",
		"signature.date":               "Data",
		"attachments.title":            "Anexos",
		"attachments.placeholder":      "Os anexos são incluídos após esta página.",
		"chart.max":                    "Máx: %s",
		"chart.min":                    "Mín: %s",
	},
}
