// Package i18n holds the localized message tables for the application and
// a small lookup API around them. Tables are plain package-level maps
// loaded once at init; nothing mutates them after that.
package i18n

import "strings"

const defaultLang = "en"

// T returns the translation for code in lang. Unknown languages fall back
// to English; unknown codes fall back to the code itself so a missing
// translation is visible in the output instead of panicking.
func T(lang, code string) string {
	if table, ok := translations[lang]; ok {
		if msg, ok := table[code]; ok {
			return msg
		}
	}
	if msg, ok := translations[defaultLang][code]; ok {
		return msg
	}
	return code
}

// Tf is T with {name} placeholder interpolation.
func Tf(lang, code string, params map[string]string) string {
	msg := T(lang, code)
	for k, v := range params {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	return msg
}

// Supported reports whether lang has a translation table.
func Supported(lang string) bool {
	_, ok := translations[lang]
	return ok
}

// DetectLanguage picks a supported language from an Accept-Language header
// value, defaulting to English.
func DetectLanguage(acceptLang string) string {
	for _, part := range strings.Split(acceptLang, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if len(tag) >= 2 {
			if prefix := strings.ToLower(tag[:2]); Supported(prefix) {
				return prefix
			}
		}
	}
	return defaultLang
}

var translations = map[string]map[string]string{
	"en": {
		// Page chrome
		"title":        "HealthBuddy - Your Wellness Companion",
		"intro":        "Your personal wellness companion – enter your details for tailored health advice!",
		"submit":       "Get Your Health Advice",
		"report_title": "Your Personalized Health Report",
		"water_intake_title": "Recommended Daily Water Intake",
		"health_tips_title":  "Personalized Health Tips",
		"about_us_label":     "About Us",
		"about_us_content":   "HealthBuddy is dedicated to providing personalized health advice to help you live a healthier life.",
		"disclaimer_label":   "Disclaimer",
		"disclaimer_content": "This application does not replace professional medical advice. Always consult a healthcare provider for medical concerns.",
		"copyright":          "© 2025 HealthToTech. All rights reserved.",

		// Form labels
		"weight_label":              "Weight (kg):",
		"height_label":              "Height (cm):",
		"age_label":                 "Age:",
		"gender_label":              "Gender:",
		"activity_label":            "Activity Level:",
		"chronic_diseases_label":    "Chronic Diseases:",
		"sleep_hours_label":         "Hours of Sleep per Night:",
		"sleep_consistency_label":   "Regular Bedtime?:",
		"sleep_disturbances_label":  "Sleep Disturbances:",
		"substance_use_label":       "Substance Use (e.g., alcohol, tobacco):",
		"mental_health_label":       "Mental Wellbeing:",
		"water_habit_label":         "How Much Water Do You Usually Drink?:",
		"fruit_veg_intake_label":    "Fruit & Vegetable Intake:",
		"oily_food_intake_label":    "Oily or Sugary Food:",
		"email_label":               "Email (optional, for report):",
		"menstrual_regularity_label": "Menstrual Cycle Regularity:",
		"pregnancy_history_label":    "Pregnancy History:",
		"contraceptive_use_label":    "Contraceptive Use:",
		"select":          "Select",
		"select_gender":   "Select gender",
		"select_activity": "Select activity level",

		// Enum display values
		"male":     "Male",
		"female":   "Female",
		"other":    "Other",
		"low":      "Low (sedentary)",
		"moderate": "Moderate (light exercise)",
		"high":     "High (active, regular exercise)",
		"yes":      "Yes",
		"no":       "No",
		"good":     "Good",
		"poor":     "Poor",
		"rarely":   "Rarely",
		"sometimes": "Sometimes",
		"often":    "Often",
		"regular":  "Regular",
		"irregular": "Irregular",
		"none":          "None",
		"insomnia":      "Insomnia",
		"waking_tired":  "Waking up tired",
		"has_pregnancy": "Yes, previous pregnancies",
		"no_pregnancy":  "No pregnancies",
		"contraceptive_none":  "None",
		"contraceptive_pill":  "Pill",
		"contraceptive_iud":   "IUD",
		"contraceptive_other": "Other",
		"bmi_label": "BMI:",

		// Validation errors
		"error_weight":        "Please enter a valid positive weight.",
		"error_height":        "Please enter a valid positive height.",
		"error_age":           "Please enter a valid positive age.",
		"error_sleep_hours":   "Please enter valid sleep hours (0-24).",
		"error_gender":        "Please select a valid gender.",
		"error_activity":      "Please select a valid activity level.",
		"error_email":         "Please enter a valid email address.",
		"error_invalid_input": "Please select a valid option for {field}.",

		// Flow messages
		"error_save":          "Failed to save your health record. Please try again.",
		"error_generic":       "An unexpected error occurred. Please try again.",
		"login_required":      "Please log in to access the dashboard.",
		"invalid_credentials": "Invalid username or password.",
		"login_success":       "Login successful!",
		"logout_success":      "You have been logged out.",
		"report_sent":         "Health report sent to your email!",

		// BMI advisories
		"bmi_underweight": "Your BMI suggests you may be underweight. Consider consulting a nutritionist to ensure adequate nutrient intake.",
		"bmi_healthy":     "Your BMI is in the healthy range. Maintain a balanced diet and regular exercise to stay on track.",
		"bmi_overweight":  "Your BMI indicates you may be overweight. Increase physical activity and consider a balanced diet plan.",
		"bmi_obese":       "Your BMI suggests obesity. Consult a healthcare professional for personalized advice and support.",

		// Activity advisories (level x age bracket)
		"activity_low_youth":       "Aim for at least 150 minutes of moderate exercise per week to improve overall health.",
		"activity_low_elderly":     "Aim for at least 150 minutes of gentle exercise per week, such as walking or swimming, to protect joint and heart health.",
		"activity_moderate_youth":  "Great job staying moderately active! Incorporate strength training 2-3 times per week for added benefits.",
		"activity_moderate_elderly": "Great job staying moderately active! Add light strength and balance work twice a week to maintain muscle and stability.",
		"activity_high_youth":      "You're highly active! Ensure proper recovery with adequate sleep and hydration to support your routine.",
		"activity_high_elderly":    "You're highly active! Prioritize recovery days, hydration, and joint-friendly training to sustain your routine.",

		// Sleep advisories (verdict x age bracket)
		"sleep_poor_youth":   "Poor sleep quality can affect your health. Aim for 7-9 hours of consistent sleep and consider a sleep specialist if disturbances persist.",
		"sleep_poor_elderly": "Poor sleep quality can affect your health. Keep a consistent bedtime, limit evening caffeine, and consult a sleep specialist if disturbances persist.",
		"sleep_good_youth":   "Good sleep habits support overall health. Maintain consistent sleep schedules for optimal well-being.",
		"sleep_good_elderly": "Good sleep habits support overall health. Keep your consistent schedule and a calm evening routine for optimal well-being.",

		// Disturbance-specific advisories
		"disturbance_insomnia":     "Insomnia can often be improved with a wind-down routine and reduced screen time before bed; seek medical advice if it persists.",
		"disturbance_waking_tired": "Waking up tired may indicate poor sleep quality; consider reviewing your sleep environment and discussing it with a doctor.",

		// Chronic disease / substance advisories
		"chronic_disease_yes": "Managing chronic conditions requires regular check-ups and adherence to medical advice.",
		"chronic_disease_no":  "No chronic conditions reported. Continue regular health check-ups to maintain your well-being.",
		"substance_use_yes":   "Substance use can impact your health. Consider consulting a professional for support and guidance.",
		"substance_use_no":    "Avoiding substance use is beneficial for long-term health. Keep up the healthy choices!",

		// Mental health advisories
		"mental_good":     "Your mental wellbeing looks solid. Keep nurturing it with rest, social connection, and activities you enjoy.",
		"mental_moderate": "Some stress is normal, but make room for recovery: short breaks, movement, and talking things through all help.",
		"mental_poor":     "Struggling mentally is nothing to face alone. Please consider reaching out to a mental health professional or someone you trust.",

		// Female-specific advisories
		"menstrual_irregular": "Irregular menstrual cycles may require medical evaluation. Consult a gynecologist for further assessment.",
		"menstrual_regular":   "Regular menstrual cycles are a good sign of hormonal health. Continue monitoring any changes.",
		"pregnancy_history":   "Previous pregnancies may influence health needs. Discuss with your doctor for tailored advice.",
		"contraceptive_use":   "Contraceptive use should be discussed with a healthcare provider to ensure it meets your health needs.",

		// Closing boilerplate
		"general_nutrition":  "Incorporate nutrient-dense foods like leafy greens, nuts, and lean proteins to support overall health.",
		"mental_health_tip":  "Practice stress-reduction techniques like meditation or yoga to enhance mental well-being.",
		"hydration":          "Staying hydrated is key to energy levels and organ function. Carry a water bottle to track intake.",

		// Email report
		"email_subject":    "Your HealthBuddy Report",
		"email_greeting":   "Hello, here is your personalized health report from HealthBuddy:",
		"email_weight":     "Weight",
		"email_height":     "Height",
		"email_age":        "Age",
		"email_gender":     "Gender",
		"email_activity":   "Activity Level",
		"email_bmi":        "BMI",
		"email_water":      "Recommended Daily Water Intake",
		"email_tips":       "Personalized Health Tips",
		"email_disclaimer": "Disclaimer: This report is for informational purposes only and does not replace professional medical advice.",
	},
	"sw": {
		"title":        "HealthBuddy - Rafiki Yako wa Afya",
		"intro":        "Rafiki yako wa kibinafsi wa afya – ingiza maelezo yako kwa ushauri wa afya wa kibinafsi!",
		"submit":       "Pata Ushauri Wako wa Afya",
		"report_title": "Ripoti Yako ya Afya ya Kibinafsi",
		"water_intake_title": "Ulaji wa Maji wa Kila Siku Unaopendekezwa",
		"health_tips_title":  "Vidokezo vya Afya vya Kibinafsi",
		"about_us_label":     "Kuhusu Sisi",
		"about_us_content":   "HealthBuddy imejitolea kutoa ushauri wa afya wa kibinafsi ili kukusaidia kuishi maisha ya afya.",
		"disclaimer_label":   "Kanusho",
		"disclaimer_content": "Programu hii haiwezi kuchukua nafasi ya ushauri wa kitaalamu wa matibabu. Daima wasiliana na mtoa huduma za afya kwa masuala ya matibabu.",
		"copyright":          "© 2025 HealthToTech. Haki zote zimehifadhiwa.",

		"weight_label":              "Uzito (kg):",
		"height_label":              "Urefu (cm):",
		"age_label":                 "Umri:",
		"gender_label":              "Jinsia:",
		"activity_label":            "Kiwango cha Shughuli:",
		"chronic_diseases_label":    "Magonjwa ya Muda Mrefu:",
		"sleep_hours_label":         "Saa za Kulala kwa Usiku:",
		"sleep_consistency_label":   "Wakati wa Kulala wa Mara kwa Mara?:",
		"sleep_disturbances_label":  "Usumbufu wa Usingizi:",
		"substance_use_label":       "Matumizi ya Dawa (k.m., pombe, tumbaku):",
		"mental_health_label":       "Afya ya Akili:",
		"water_habit_label":         "Unakunywa Maji Kiasi Gani Kwa Kawaida?:",
		"fruit_veg_intake_label":    "Ulaji wa Matunda na Mboga:",
		"oily_food_intake_label":    "Vyakula vya Mafuta au Sukari:",
		"email_label":               "Barua Pepe (hiari, kwa ripoti):",
		"menstrual_regularity_label": "Uratibu wa Mizunguko ya Hedhi:",
		"pregnancy_history_label":    "Historia ya Ujauzito:",
		"contraceptive_use_label":    "Matumizi ya Uzazi wa Mpango:",
		"select":          "Chagua",
		"select_gender":   "Chagua jinsia",
		"select_activity": "Chagua kiwango cha shughuli",

		"male":     "Mwanaume",
		"female":   "Mwanamke",
		"other":    "Nyingine",
		"low":      "Chini (kukaa tu)",
		"moderate": "Wastani (mazoezi mepesi)",
		"high":     "Juu (shughuli za mara kwa mara)",
		"yes":      "Ndiyo",
		"no":       "Hapana",
		"good":     "Nzuri",
		"poor":     "Dhaifu",
		"rarely":   "Mara chache",
		"sometimes": "Wakati mwingine",
		"often":    "Mara nyingi",
		"regular":  "Mara kwa mara",
		"irregular": "Sio ya mara kwa mara",
		"none":          "Hakuna",
		"insomnia":      "Kukosa usingizi",
		"waking_tired":  "Kuamka ukiwa umechoka",
		"has_pregnancy": "Ndiyo, mimba za awali",
		"no_pregnancy":  "Hapana mimba",
		"contraceptive_none":  "Hakuna",
		"contraceptive_pill":  "Vidonge",
		"contraceptive_iud":   "IUD",
		"contraceptive_other": "Nyingine",
		"bmi_label": "BMI:",

		"error_weight":        "Tafadhali ingiza uzito halali wa chanya.",
		"error_height":        "Tafadhali ingiza urefu halali wa chanya.",
		"error_age":           "Tafadhali ingiza umri halali wa chanya.",
		"error_sleep_hours":   "Tafadhali ingiza saa za kulala zinazofaa (0-24).",
		"error_gender":        "Tafadhali chagua jinsia halali.",
		"error_activity":      "Tafadhali chagua kiwango cha shughuli halali.",
		"error_email":         "Tafadhali ingiza anwani halali ya barua pepe.",
		"error_invalid_input": "Tafadhali chagua chaguo halali kwa {field}.",

		"error_save":          "Imeshindikana kuhifadhi rekodi yako ya afya. Tafadhali jaribu tena.",
		"error_generic":       "Hitilafu isiyotarajiwa imetokea. Tafadhali jaribu tena.",
		"login_required":      "Tafadhali ingia ili kufikia dashibodi.",
		"invalid_credentials": "Jina la mtumiaji au nenosiri si sahihi.",
		"login_success":       "Umeingia kikamilifu!",
		"logout_success":      "Umetoka kwenye mfumo.",
		"report_sent":         "Ripoti ya afya imetumwa kwa barua pepe yako!",

		"bmi_underweight": "BMI yako inaonyesha unaweza kuwa na uzito wa chini. Fikiria kushauriana na mtaalamu wa lishe.",
		"bmi_healthy":     "BMI yako iko katika kiwango cha afya. Endelea kudumisha chakula bora na mazoezi ya mara kwa mara.",
		"bmi_overweight":  "BMI yako inaonyesha unaweza kuwa na uzito wa ziada. Ongeza shughuli za kimwili na fuata chakula bora.",
		"bmi_obese":       "BMI yako inaonyesha unene. Shauriana na mtaalamu wa afya kwa ushauri wa kibinafsi.",

		"activity_low_youth":       "Lenga angalau dakika 150 za mazoezi ya wastani kwa wiki ili kuboresha afya ya jumla.",
		"activity_low_elderly":     "Lenga angalau dakika 150 za mazoezi mepesi kwa wiki, kama kutembea au kuogelea, ili kulinda afya ya viungo na moyo.",
		"activity_moderate_youth":  "Kazi nzuri kwa kuendelea na shughuli za wastani! Jumuisha mafunzo ya nguvu mara 2-3 kwa wiki.",
		"activity_moderate_elderly": "Kazi nzuri kwa kuendelea na shughuli za wastani! Ongeza mazoezi mepesi ya nguvu na ya usawa mara mbili kwa wiki.",
		"activity_high_youth":      "Wewe ni mwenye shughuli za juu! Hakikisha unapata nafuu ya kutosha na usingizi wa kutosha na maji.",
		"activity_high_elderly":    "Wewe ni mwenye shughuli za juu! Weka kipaumbele kwa siku za kupumzika, maji ya kutosha, na mazoezi yasiyoumiza viungo.",

		"sleep_poor_youth":   "Ubora duni wa usingizi unaweza kuathiri afya yako. Lenga kulala saa 7-9 za mara kwa mara na fikiria mtaalamu wa usingizi ikiwa usumbufu utaendelea.",
		"sleep_poor_elderly": "Ubora duni wa usingizi unaweza kuathiri afya yako. Dumisha muda wa kulala wa kawaida, punguza kafeini jioni, na mwone mtaalamu wa usingizi ikiwa usumbufu utaendelea.",
		"sleep_good_youth":   "Tabia nzuri za kulala zinasaidia afya ya jumla. Dumisha ratiba za kulala za mara kwa mara kwa ustawi bora.",
		"sleep_good_elderly": "Tabia nzuri za kulala zinasaidia afya ya jumla. Endelea na ratiba yako ya kawaida na utulivu wa jioni kwa ustawi bora.",

		"disturbance_insomnia":     "Kukosa usingizi mara nyingi kunaweza kuboreshwa kwa ratiba ya kutulia na kupunguza matumizi ya skrini kabla ya kulala; tafuta ushauri wa daktari ikiwa kutaendelea.",
		"disturbance_waking_tired": "Kuamka ukiwa umechoka kunaweza kuonyesha ubora duni wa usingizi; pitia mazingira yako ya kulala na ujadiliane na daktari.",

		"chronic_disease_yes": "Kudhibiti hali za muda mrefu kunahitaji uchunguzi wa mara kwa mara na kufuata ushauri wa matibabu.",
		"chronic_disease_no":  "Hakuna hali za muda mrefu zilizoripotiwa. Endelea na uchunguzi wa afya wa mara kwa mara ili kudumisha ustawi wako.",
		"substance_use_yes":   "Matumizi ya dawa za kulevya yanaweza kuathiri afya yako. Fikiria kushauriana na mtaalamu kwa msaada na mwongozo.",
		"substance_use_no":    "Kuepuka matumizi ya dawa za kulevya ni faida kwa afya ya muda mrefu. Endelea na chaguo za afya!",

		"mental_good":     "Afya yako ya akili inaonekana imara. Endelea kuijali kwa kupumzika, kuwa na marafiki, na shughuli unazozipenda.",
		"mental_moderate": "Msongo kiasi ni kawaida, lakini tenga muda wa kupona: mapumziko mafupi, mazoezi, na kuzungumza husaidia.",
		"mental_poor":     "Kupambana na afya ya akili si jambo la kukabili peke yako. Tafadhali fikiria kuwasiliana na mtaalamu wa afya ya akili au mtu unayemwamini.",

		"menstrual_irregular": "Mizunguko ya hedhi isiyo ya kawaida inaweza kuhitaji tathmini ya matibabu. Shauriana na daktari wa wanawake kwa tathmini zaidi.",
		"menstrual_regular":   "Mizunguko ya hedhi ya kawaida ni ishara nzuri ya afya ya homoni. Endelea kufuatilia mabadiliko yoyote.",
		"pregnancy_history":   "Historia ya ujauzito inaweza kuathiri mahitaji ya afya. Jadiliana na daktari wako kwa ushauri wa kibinafsi.",
		"contraceptive_use":   "Matumizi ya uzazi wa mpango yanapaswa kujadiliwa na mtoa huduma za afya ili kuhakikisha yanakidhi mahitaji yako ya afya.",

		"general_nutrition": "Jumuisha vyakula vyenye virutubisho vingi kama mboga za majani, karanga, na protini zisizo na mafuta ili kusaidia afya ya jumla.",
		"mental_health_tip": "Fanya mazoezi ya kupunguza msongo wa mawazo kama kutafakari au yoga ili kuboresha ustawi wa akili.",
		"hydration":         "Kukaa na maji ni muhimu kwa viwango vya nishati na utendaji wa viungo. Beba chupa ya maji ili kufuatilia ulaji.",

		"email_subject":    "Ripoti Yako ya HealthBuddy",
		"email_greeting":   "Habari, hii ni ripoti yako ya kibinafsi ya afya kutoka HealthBuddy:",
		"email_weight":     "Uzito",
		"email_height":     "Urefu",
		"email_age":        "Umri",
		"email_gender":     "Jinsia",
		"email_activity":   "Kiwango cha Shughuli",
		"email_bmi":        "BMI",
		"email_water":      "Ulaji wa Maji wa Kila Siku Unaopendekezwa",
		"email_tips":       "Vidokezo vya Afya vya Kibinafsi",
		"email_disclaimer": "Kanusho: Ripoti hii ni kwa madhumuni ya taarifa tu na haiwezi kuchukua nafasi ya ushauri wa kitaalamu wa matibabu.",
	},
}
