package recommendation

import "github.com/jwalitptl/healthtrack-api/internal/model"

// Diseases returns the full NCD information catalog.
func (s *Service) Diseases() []model.Disease {
	return diseaseCatalog
}

// Disease returns one catalog entry by ID, or nil for an unknown ID.
func (s *Service) Disease(id string) *model.Disease {
	for i := range diseaseCatalog {
		if diseaseCatalog[i].ID == id {
			return &diseaseCatalog[i]
		}
	}
	return nil
}

var diseaseCatalog = []model.Disease{
	{
		ID:          "diabetes",
		Name:        "Diabetes (type 2)",
		Icon:        "fa-droplet",
		Description: "A chronic condition in which the body cannot regulate blood sugar effectively, leading to persistently high glucose levels that damage vessels, nerves, kidneys and eyes over time.",
		RiskFactors: []string{
			"Overweight and obesity, especially abdominal fat",
			"Physical inactivity",
			"Family history of diabetes",
			"Age over 35",
			"High blood pressure or abnormal blood lipids",
		},
		Prevention: []string{
			"Keep BMI in the healthy range",
			"Limit sugary drinks and refined carbohydrates",
			"Exercise at least 150 minutes per week",
			"Screen fasting glucose yearly if at risk",
		},
		Care: []string{
			"Monitor blood glucose as advised",
			"Follow a consistent low-sugar meal pattern",
			"Inspect feet regularly for wounds",
			"Keep vaccination and eye-exam appointments",
		},
		Treatment: []string{
			"Lifestyle modification is first-line treatment",
			"Oral glucose-lowering medication such as metformin",
			"Insulin when oral medication is insufficient",
			"Regular HbA1c follow-up with a physician",
		},
	},
	{
		ID:          "hypertension",
		Name:        "Hypertension",
		Icon:        "fa-heart-pulse",
		Description: "Persistently elevated blood pressure (140/90 mmHg or higher). Usually symptomless, which is why it is called the silent killer, yet it steadily damages the heart, brain and kidneys.",
		RiskFactors: []string{
			"High salt intake",
			"Obesity and inactivity",
			"Heavy alcohol use and smoking",
			"Chronic stress",
			"Family history and older age",
		},
		Prevention: []string{
			"Limit sodium to under 2,000 mg per day",
			"Maintain healthy weight",
			"Exercise regularly and manage stress",
			"Check blood pressure at least yearly",
		},
		Care: []string{
			"Measure blood pressure at home and record it",
			"Take medication at the same time every day",
			"Reduce salty and processed food",
			"Avoid skipping follow-up visits",
		},
		Treatment: []string{
			"Lifestyle changes for mild elevation",
			"Antihypertensive medication selected by a physician",
			"Treatment of contributing conditions",
		},
	},
	{
		ID:          "heart-disease",
		Name:        "Coronary heart disease",
		Icon:        "fa-heart",
		Description: "Narrowing of the arteries that supply the heart muscle, caused by cholesterol plaque. Can present as chest pain on exertion or, suddenly, as a heart attack.",
		RiskFactors: []string{
			"High blood cholesterol",
			"Smoking",
			"Diabetes and hypertension",
			"Obesity and sedentary lifestyle",
		},
		Prevention: []string{
			"Avoid smoking entirely",
			"Eat a diet low in saturated and trans fat",
			"Control blood pressure, sugar and lipids",
			"Exercise most days of the week",
		},
		Care: []string{
			"Carry prescribed nitroglycerin if advised",
			"Learn the warning signs of a heart attack",
			"Seek emergency care (1669) for chest pain lasting over 15 minutes",
		},
		Treatment: []string{
			"Antiplatelet and lipid-lowering medication",
			"Angioplasty with stenting for significant blockage",
			"Bypass surgery in severe multi-vessel disease",
		},
	},
	{
		ID:          "stroke",
		Name:        "Stroke",
		Icon:        "fa-brain",
		Description: "Sudden loss of brain function caused by a blocked or ruptured brain vessel. Minutes matter: fast treatment limits permanent disability.",
		RiskFactors: []string{
			"Hypertension is the strongest risk factor",
			"Atrial fibrillation",
			"Diabetes, smoking, high cholesterol",
			"Previous stroke or TIA",
		},
		Prevention: []string{
			"Control blood pressure strictly",
			"Treat heart rhythm disorders",
			"Stop smoking and limit alcohol",
		},
		Care: []string{
			"Know the F.A.S.T. signs: face droop, arm weakness, speech trouble, time to call",
			"Call 1669 immediately at the first sign",
			"Rehabilitation therapy after the acute phase",
		},
		Treatment: []string{
			"Clot-dissolving medication within the first hours of an ischemic stroke",
			"Mechanical thrombectomy in selected cases",
			"Long-term antithrombotic and risk-factor control",
		},
	},
	{
		ID:          "obesity",
		Name:        "Obesity",
		Icon:        "fa-weight-scale",
		Description: "Excess body fat, defined for Asian populations as BMI 25 or higher (obese class 1) and 30 or higher (class 2). A root risk factor for most other NCDs.",
		RiskFactors: []string{
			"Energy intake exceeding energy use",
			"Sugary drinks and frequent fast food",
			"Sedentary work and screen time",
			"Poor sleep and chronic stress",
		},
		Prevention: []string{
			"Weigh regularly and track the trend",
			"Prefer water over sweetened drinks",
			"Build daily movement into routine",
		},
		Care: []string{
			"Set gradual targets of 0.5-1 kg loss per week",
			"Record meals and weight in a diary",
			"Combine diet change with strength exercise to preserve muscle",
		},
		Treatment: []string{
			"Structured diet and exercise program",
			"Medication or bariatric surgery only under specialist care",
		},
	},
	{
		ID:          "chronic-kidney-disease",
		Name:        "Chronic kidney disease",
		Icon:        "fa-kidneys",
		Description: "Gradual loss of kidney function over months to years, most often a late consequence of diabetes and hypertension. Silent until far advanced.",
		RiskFactors: []string{
			"Long-standing diabetes or hypertension",
			"Regular use of NSAID painkillers",
			"High-salt diet",
			"Family history of kidney disease",
		},
		Prevention: []string{
			"Control blood sugar and blood pressure",
			"Avoid unnecessary painkillers and unregulated supplements",
			"Drink adequate water and limit salt",
			"Screen kidney function yearly if diabetic or hypertensive",
		},
		Care: []string{
			"Limit dietary protein and salt as advised",
			"Avoid nephrotoxic drugs",
			"Attend scheduled blood and urine checks",
		},
		Treatment: []string{
			"Medication to slow progression and control complications",
			"Dialysis or kidney transplant in end-stage disease",
		},
	},
}
