package catalog

// Builtin returns the default clinical dataset compiled into the
// binary. Deployments that need a localized or extended catalog load
// the same shape from a JSON file or Postgres instead.
func Builtin() *Catalog {
	return &Catalog{
		Symptoms: []SymptomEntry{
			// Neurological
			{Name: "headache", Aliases: []string{"head pain", "migraine", "tension headache", "cluster headache", "head ache"}, BodyPart: "head", Category: "neurological"},
			{Name: "dizziness", Aliases: []string{"dizzy", "lightheaded", "vertigo", "spinning sensation", "unsteady"}, BodyPart: "head", Category: "neurological"},
			{Name: "confusion", Aliases: []string{"confused", "disoriented", "memory problems", "brain fog"}, BodyPart: "head", Category: "neurological"},
			{Name: "numbness", Aliases: []string{"numb", "tingling", "pins and needles", "loss of sensation"}, BodyPart: "limbs", Category: "neurological"},

			// Respiratory
			{Name: "cough", Aliases: []string{"coughing", "dry cough", "wet cough", "persistent cough", "hacking cough"}, BodyPart: "chest", Category: "respiratory"},
			{Name: "shortness of breath", Aliases: []string{"breathless", "difficulty breathing", "can't breathe", "winded", "dyspnea"}, BodyPart: "chest", Category: "respiratory"},
			{Name: "chest pain", Aliases: []string{"chest ache", "chest tightness", "chest pressure", "heart pain"}, BodyPart: "chest", Category: "respiratory"},
			{Name: "wheezing", Aliases: []string{"whistling breath", "noisy breathing"}, BodyPart: "chest", Category: "respiratory"},

			// Gastrointestinal
			{Name: "nausea", Aliases: []string{"nauseated", "nauseous", "queasy", "sick to stomach", "feeling sick"}, BodyPart: "abdomen", Category: "gastrointestinal"},
			{Name: "vomiting", Aliases: []string{"throwing up", "puking", "being sick", "retching"}, BodyPart: "abdomen", Category: "gastrointestinal"},
			{Name: "stomach ache", Aliases: []string{"stomach pain", "belly ache", "tummy ache", "gastric pain"}, BodyPart: "abdomen", Category: "gastrointestinal"},
			{Name: "diarrhea", Aliases: []string{"loose stools", "watery stools", "frequent bowel movements"}, BodyPart: "abdomen", Category: "gastrointestinal"},
			{Name: "constipation", Aliases: []string{"can't poop", "hard stools", "difficulty passing stool"}, BodyPart: "abdomen", Category: "gastrointestinal"},

			// General
			{Name: "fever", Aliases: []string{"high temperature", "hot", "burning up", "feverish", "pyrexia"}, BodyPart: "general", Category: "general"},
			{Name: "fatigue", Aliases: []string{"tired", "exhausted", "weak", "drained", "no energy"}, BodyPart: "general", Category: "general"},
			{Name: "chills", Aliases: []string{"shivering", "cold", "shaking", "goosebumps"}, BodyPart: "general", Category: "general"},
			{Name: "joint pain", Aliases: []string{"aching joints", "stiff joints", "joint stiffness", "arthritis pain"}, BodyPart: "joints", Category: "musculoskeletal"},
			{Name: "muscle ache", Aliases: []string{"muscle pain", "sore muscles", "muscle soreness", "myalgia"}, BodyPart: "muscles", Category: "musculoskeletal"},

			// ENT
			{Name: "sore throat", Aliases: []string{"throat pain", "scratchy throat", "throat irritation"}, BodyPart: "throat", Category: "ent"},
			{Name: "runny nose", Aliases: []string{"nasal discharge", "stuffy nose", "congestion", "blocked nose"}, BodyPart: "nose", Category: "ent"},
			{Name: "ear pain", Aliases: []string{"earache", "ear infection", "ear discomfort"}, BodyPart: "ear", Category: "ent"},
		},

		// Walked in order; the first level with a keyword hit wins.
		SeverityLevels: []SeverityKeywords{
			{Level: "mild", Keywords: []string{"slight", "minor", "light", "mild", "a little", "barely", "somewhat"}},
			{Level: "moderate", Keywords: []string{"moderate", "medium", "noticeable", "some", "fairly", "quite", "decent"}},
			{Level: "severe", Keywords: []string{"severe", "intense", "sharp", "strong", "terrible", "awful", "extreme", "unbearable", "excruciating"}},
		},

		DurationPatterns: []string{
			`(\d+)\s*(hours|hour|hrs|hr)`,
			`(\d+)\s*(days|day)`,
			`(\d+)\s*(weeks|week)`,
			`(\d+)\s*(months|month)`,
			`(yesterday|today|this morning|last night)`,
			`(few hours|couple hours|several hours)`,
			`(few days|couple days|several days)`,
			`(few weeks|couple weeks|several weeks)`,
		},

		OnsetPhrases: []string{
			"suddenly", "gradually", "slowly", "quickly", "immediately",
			"this morning", "last night", "after eating", "when i woke up",
		},

		EmergencyPhrases: []string{
			"can't breathe", "chest pain", "severe headache", "unconscious", "bleeding heavily",
			"severe abdominal pain", "difficulty breathing", "heart attack", "stroke symptoms",
			"severe allergic reaction", "high fever with stiff neck",
		},

		HighPhrases: []string{
			"severe pain", "high fever", "persistent vomiting", "severe dizziness",
			"difficulty swallowing", "severe fatigue", "unexplained weight loss",
		},

		// "severe headache" is not a canonical symptom, so that pair
		// never fires against extracted names. Kept verbatim from the
		// shipped rule set; DormantPairs reports it.
		UrgencyPairs: []UrgencyPair{
			{First: "chest pain", Second: "shortness of breath", Level: "emergency"},
			{First: "severe headache", Second: "fever", Level: "emergency"},
		},

		Conditions: []Condition{
			{
				ID:          "upper-respiratory-infection",
				Name:        "Upper Respiratory Infection",
				Description: "A viral or bacterial infection affecting the nose, throat, and upper airways.",
				Urgency:     "low",
				Symptoms:    []string{"cough", "sore throat", "runny nose", "fever", "fatigue"},
				Recommendations: []string{
					"Get plenty of rest and stay well-hydrated",
					"Use throat lozenges or warm salt water gargles",
					"Consider over-the-counter pain relievers",
					"Use a humidifier to ease congestion",
				},
				WhenToSeekCare: []string{
					"Symptoms persist longer than 10 days",
					"High fever (over 101.3°F/38.5°C)",
					"Severe headache or sinus pain",
					"Difficulty breathing or swallowing",
				},
			},
			{
				ID:          "migraine",
				Name:        "Migraine Headache",
				Description: "A neurological condition causing intense headaches often accompanied by nausea and sensitivity to light.",
				Urgency:     "medium",
				Symptoms:    []string{"headache", "nausea", "dizziness", "fatigue"},
				Recommendations: []string{
					"Rest in a quiet, dark room",
					"Apply cold or warm compress to head",
					"Stay hydrated and maintain regular sleep",
					"Avoid known triggers (stress, certain foods)",
				},
				WhenToSeekCare: []string{
					"Sudden, severe headache unlike any before",
					"Headache with fever, stiff neck, or rash",
					"Headache after head injury",
					"Progressive worsening of headaches",
				},
			},
			{
				ID:          "gastroenteritis",
				Name:        "Gastroenteritis",
				Description: "Inflammation of the stomach and intestines, usually caused by viral or bacterial infection.",
				Urgency:     "medium",
				Symptoms:    []string{"nausea", "vomiting", "diarrhea", "stomach ache", "fever"},
				Recommendations: []string{
					"Stay hydrated with clear fluids",
					"Follow BRAT diet (bananas, rice, applesauce, toast)",
					"Rest and avoid dairy temporarily",
					"Consider probiotics after symptoms improve",
				},
				WhenToSeekCare: []string{
					"Signs of severe dehydration",
					"Blood in vomit or stool",
					"High fever with severe abdominal pain",
					"Symptoms persist longer than 3 days",
				},
			},
			{
				ID:          "anxiety-disorder",
				Name:        "Anxiety-Related Symptoms",
				Description: "Physical symptoms that can occur due to anxiety or stress responses.",
				Urgency:     "low",
				Symptoms:    []string{"dizziness", "chest pain", "shortness of breath", "fatigue", "nausea"},
				Recommendations: []string{
					"Practice deep breathing exercises",
					"Try relaxation techniques or meditation",
					"Regular exercise and adequate sleep",
					"Consider speaking with a mental health professional",
				},
				WhenToSeekCare: []string{
					"Symptoms interfere with daily activities",
					"Panic attacks become frequent",
					"Physical symptoms are severe or persistent",
					"Thoughts of self-harm",
				},
			},
			{
				ID:          "dehydration",
				Name:        "Dehydration",
				Description: "Condition caused by losing more fluids than you take in.",
				Urgency:     "medium",
				Symptoms:    []string{"dizziness", "fatigue", "headache", "nausea"},
				Recommendations: []string{
					"Increase fluid intake gradually",
					"Drink electrolyte solutions",
					"Rest in a cool environment",
					"Avoid alcohol and caffeine",
				},
				WhenToSeekCare: []string{
					"Severe dizziness or fainting",
					"No urination for 8+ hours",
					"Rapid heartbeat or breathing",
					"Confusion or irritability",
				},
			},
			{
				ID:          "heart-attack",
				Name:        "Possible Heart Attack",
				Description: "A medical emergency where blood flow to the heart is blocked.",
				Urgency:     "emergency",
				Symptoms:    []string{"chest pain", "shortness of breath", "nausea", "dizziness"},
				Recommendations: []string{
					"Call 911 immediately",
					"Chew aspirin if not allergic",
					"Stay calm and rest",
					"Do not drive yourself to hospital",
				},
				WhenToSeekCare: []string{
					"Immediate emergency care required",
					"Call 911 now",
				},
			},
		},

		Medications: map[string][]Medication{
			"headache": {
				{
					ID: "paracetamol", Name: "Paracetamol", GenericName: "Acetaminophen",
					BrandNames: []string{"Panadol", "Hedex", "Tylenol"},
					Type:       "otc", Dosage: "500mg-1000mg", Frequency: "Every 4-6 hours", Duration: "As needed, max 3 days",
					SideEffects:       []string{"Rare allergic reactions", "Liver damage with overdose"},
					Contraindications: []string{"Liver disease", "Alcohol dependency"},
					Availability:      "widely_available", EstimatedCost: "KSh 50-150",
				},
				{
					ID: "ibuprofen", Name: "Ibuprofen", GenericName: "Ibuprofen",
					BrandNames: []string{"Brufen", "Advil", "Nurofen"},
					Type:       "otc", Dosage: "200mg-400mg", Frequency: "Every 6-8 hours", Duration: "As needed, max 3 days",
					SideEffects:       []string{"Stomach upset", "Dizziness", "Heartburn"},
					Contraindications: []string{"Stomach ulcers", "Kidney disease", "Heart conditions"},
					Availability:      "widely_available", EstimatedCost: "KSh 80-200",
				},
			},
			"cough": {
				{
					ID: "dextromethorphan", Name: "Cough Syrup", GenericName: "Dextromethorphan",
					BrandNames: []string{"Benylin", "Robitussin", "Actifed"},
					Type:       "otc", Dosage: "15ml", Frequency: "Every 4 hours", Duration: "5-7 days",
					SideEffects:       []string{"Drowsiness", "Dizziness", "Nausea"},
					Contraindications: []string{"Children under 6", "Pregnancy (first trimester)"},
					Availability:      "widely_available", EstimatedCost: "KSh 200-400",
				},
				{
					ID: "honey-ginger", Name: "Honey & Ginger", GenericName: "Natural remedy",
					BrandNames: []string{"Local honey", "Fresh ginger"},
					Type:       "herbal", Dosage: "1 tablespoon honey + ginger tea", Frequency: "2-3 times daily", Duration: "Until symptoms improve",
					SideEffects:       []string{"Minimal", "Possible allergic reaction to honey"},
					Contraindications: []string{"Children under 1 year (honey)"},
					Availability:      "widely_available", EstimatedCost: "KSh 100-300",
				},
			},
			"sore throat": {
				{
					ID: "antiseptic-lozenges", Name: "Throat Lozenges", GenericName: "Antiseptic lozenges",
					BrandNames: []string{"Strepsils", "Tyrozets", "Difflam"},
					Type:       "otc", Dosage: "1 lozenge", Frequency: "Every 2-3 hours", Duration: "3-5 days",
					SideEffects:       []string{"Mouth irritation", "Temporary taste changes"},
					Contraindications: []string{"Severe throat swelling"},
					Availability:      "widely_available", EstimatedCost: "KSh 150-300",
				},
			},
			"nausea": {
				{
					ID: "ors", Name: "ORS (Oral Rehydration Salts)", GenericName: "Electrolyte solution",
					BrandNames: []string{"WHO-ORS", "Electrolade", "Dioralyte"},
					Type:       "otc", Dosage: "1 sachet in 1 liter water", Frequency: "Sip frequently", Duration: "Until rehydrated",
					SideEffects:       []string{"Minimal", "Possible bloating"},
					Contraindications: []string{"Severe kidney disease"},
					Availability:      "widely_available", EstimatedCost: "KSh 20-50 per sachet",
				},
			},
			"diarrhea": {
				{
					ID: "ors", Name: "ORS (Oral Rehydration Salts)", GenericName: "Electrolyte solution",
					BrandNames: []string{"WHO-ORS", "Electrolade"},
					Type:       "otc", Dosage: "1 sachet in 1 liter water", Frequency: "After each loose stool", Duration: "Until symptoms resolve",
					SideEffects:       []string{"Minimal"},
					Contraindications: []string{"Severe dehydration requiring IV fluids"},
					Availability:      "widely_available", EstimatedCost: "KSh 20-50 per sachet",
				},
				{
					ID: "loperamide", Name: "Loperamide", GenericName: "Loperamide HCl",
					BrandNames: []string{"Imodium", "Lopex"},
					Type:       "otc", Dosage: "2mg initially, then 1mg after each loose stool", Frequency: "As needed", Duration: "Max 2 days",
					SideEffects:       []string{"Constipation", "Dizziness", "Dry mouth"},
					Contraindications: []string{"Bloody diarrhea", "High fever", "Children under 6"},
					Availability:      "common", EstimatedCost: "KSh 300-500",
				},
			},
			"runny nose": {
				{
					ID: "chlorpheniramine", Name: "Piriton", GenericName: "Chlorpheniramine",
					BrandNames: []string{"Piriton", "Allergex"},
					Type:       "otc", Dosage: "4mg", Frequency: "Every 4-6 hours", Duration: "As needed",
					SideEffects:       []string{"Drowsiness", "Dry mouth", "Blurred vision"},
					Contraindications: []string{"Glaucoma", "Enlarged prostate", "Severe asthma"},
					Availability:      "widely_available", EstimatedCost: "KSh 100-250",
				},
			},
			"shortness of breath": {
				{
					ID: "salbutamol", Name: "Ventolin Inhaler", GenericName: "Salbutamol",
					BrandNames: []string{"Ventolin", "Airomir", "Asthalin"},
					Type:       "prescription", Dosage: "1-2 puffs", Frequency: "As needed for breathing difficulty", Duration: "As prescribed by doctor",
					SideEffects:       []string{"Tremor", "Rapid heartbeat", "Headache"},
					Contraindications: []string{"Heart rhythm disorders", "Hyperthyroidism"},
					Availability:      "prescription_only", EstimatedCost: "KSh 800-1500",
				},
			},
		},
	}
}
