package service

import "github.com/ustazlink/survey-backend/internal/model"

// Built-in bilingual catalog restored by ResetToDefaults. Sections appear
// in display order; Order is assigned sequentially across the whole set.

func defaultStudentQuestions() []model.SurveyQuestion {
	return numbered(model.SurveyTypeStudent, []model.SurveyQuestion{
		{
			Section:    "Quran Reading",
			Identifier: "quran_goal",
			TextEN:     "What is your primary goal for learning Quran?",
			TextAR:     "ما هو هدفك الأساسي من تعلم القرآن؟",
			OptionsEN:  []string{"Reading with Tajweed", "Memorization", "Understanding meaning"},
			OptionsAR:  []string{"القراءة بالتجويد", "الحفظ", "فهم المعاني"},
		},
		{
			Section:    "Tajweed",
			Identifier: "tajweed_level",
			TextEN:     "What is your current Tajweed level?",
			TextAR:     "ما هو مستواك الحالي في التجويد؟",
			OptionsEN:  []string{"Beginner", "Intermediate", "Advanced"},
			OptionsAR:  []string{"مبتدئ", "متوسط", "متقدم"},
		},
		{
			Section:    "Tajweed",
			Identifier: "tajweed_knowledge",
			TextEN:     "Which Tajweed rules are you familiar with?",
			TextAR:     "ما هي أحكام التجويد التي تعرفها؟",
			OptionsEN:  []string{"Basic Nun Sakinah", "Mudd Rules", "Makharij (Exit Points)"},
			OptionsAR:  []string{"أحكام النون الساكنة", "أحكام المد", "مخارج الحروف"},
		},
		{
			Section:    "Tajweed",
			Identifier: "tajweed_practice",
			TextEN:     "How often do you practice Tajweed?",
			TextAR:     "كم مرة تمارس التجويد؟",
			OptionsEN:  []string{"Daily", "Weekly", "Rarely"},
			OptionsAR:  []string{"يومياً", "أسبوعياً", "نادراً"},
		},
		{
			Section:    "Hadith",
			Identifier: "hadith_collection",
			TextEN:     "Which Hadith collection are you interested in?",
			TextAR:     "أي مجموعة حديث تهتم بها؟",
			OptionsEN:  []string{"Sahih Bukhari", "Sahih Muslim", "40 Hadith Nawawi", "Riyad as-Salihin"},
			OptionsAR:  []string{"صحيح البخاري", "صحيح مسلم", "الأربعين النووية", "رياض الصالحين"},
		},
		{
			Section:    "Hadith",
			Identifier: "hadith_focus",
			TextEN:     "What is your focus in Hadith studies?",
			TextAR:     "ما هو تركيزك في دراسة الحديث؟",
			OptionsEN:  []string{"General Understanding", "Isnad (Chain of Narrators)", "Fiqh of Hadith"},
			OptionsAR:  []string{"الفهم العام", "الإسناد", "فقه الحديث"},
		},
		{
			Section:    "Hadith",
			Identifier: "hadith_language",
			TextEN:     "Preferred language for Hadith explanation?",
			TextAR:     "اللغة المفضلة لشرح الحديث؟",
			OptionsEN:  []string{"English", "Arabic", "Amharic", "Oromo"},
			OptionsAR:  []string{"الإنجليزية", "العربية", "الأمهرية", "الأورومو"},
		},
		{
			Section:    "Arabic Language",
			Identifier: "arabic_level",
			TextEN:     "Current Arabic proficiency?",
			TextAR:     "مستوى إجادة اللغة العربية الحالي؟",
			OptionsEN:  []string{"Beginner", "Intermediate", "Advanced"},
			OptionsAR:  []string{"مبتدئ", "متوسط", "متقدم"},
		},
		{
			Section:    "Arabic Language",
			Identifier: "arabic_goal",
			TextEN:     "Goal for learning Arabic?",
			TextAR:     "الهدف من تعلم العربية؟",
			OptionsEN:  []string{"Understanding Quran", "Speaking/Conversation", "Academic/Grammar", "Business"},
			OptionsAR:  []string{"فهم القرآن", "المحادثة", "الدراسة/النحو", "العمل"},
		},
		{
			Section:    "Arabic Language",
			Identifier: "arabic_dialect",
			TextEN:     "Preferred dialect?",
			TextAR:     "اللهجة المفضلة؟",
			OptionsEN:  []string{"Fusha (Modern Standard)", "Egyptian", "Levantine", "Gulf", "North African"},
			OptionsAR:  []string{"الفصحى", "المصرية", "الشامية", "الخليجية", "المغاربية"},
		},
		{
			Section:    "Arabic Language",
			Identifier: "arabic_schedule",
			TextEN:     "Preferred schedule intensity?",
			TextAR:     "كثافة الجدول المفضلة؟",
			OptionsEN:  []string{"Intensive (Daily)", "Regular (2-3 times/week)", "Casual (Weekend)"},
			OptionsAR:  []string{"مكثف (يومي)", "منتظم (2-3 مرات/أسبوع)", "عادي (نهاية الأسبوع)"},
		},
		{
			Section:    "Islamic Arts",
			Identifier: "art_type",
			TextEN:     "Type of Islamic Art?",
			TextAR:     "نوع الفن الإسلامي؟",
			OptionsEN:  []string{"Calligraphy", "Geometric Patterns", "Illumination", "Architecture History"},
			OptionsAR:  []string{"الخط العربي", "الزخارف الهندسية", "التذهيب", "تاريخ العمارة"},
		},
		{
			Section:    "Islamic Arts",
			Identifier: "art_level",
			TextEN:     "Experience level?",
			TextAR:     "مستوى الخبرة؟",
			OptionsEN:  []string{"Beginner", "Hobbyist", "Professional"},
			OptionsAR:  []string{"مبتدئ", "هاوي", "محترف"},
		},
		{
			Section:    "Islamic Arts",
			Identifier: "art_goal",
			TextEN:     "Goal?",
			TextAR:     "الهدف؟",
			OptionsEN:  []string{"Personal Enjoyment", "Professional Skill", "Teaching"},
			OptionsAR:  []string{"متعة شخصية", "مهارة مهنية", "التعليم"},
		},
	})
}

func defaultTeacherQuestions() []model.SurveyQuestion {
	return numbered(model.SurveyTypeTeacher, []model.SurveyQuestion{
		{
			Section:    "Quran Reading",
			Identifier: "quran_teaching_exp",
			TextEN:     "Level you are qualified to teach?",
			TextAR:     "المستوى الذي أنت مؤهل لتدريسه؟",
			OptionsEN:  []string{"Beginner", "Intermediate", "Advanced"},
			OptionsAR:  []string{"مبتدئ", "متوسط", "متقدم"},
		},
		{
			Section:    "Tajweed",
			Identifier: "tajweed_level",
			TextEN:     "Level you are qualified to teach?",
			TextAR:     "المستوى الذي أنت مؤهل لتدريسه؟",
			OptionsEN:  []string{"Beginner", "Intermediate", "Advanced"},
			OptionsAR:  []string{"مبتدئ", "متوسط", "متقدم"},
		},
		{
			Section:    "Tajweed",
			Identifier: "tajweed_knowledge",
			TextEN:     "Tajweed rules you can teach?",
			TextAR:     "أحكام التجويد التي يمكنك تدريسها؟",
			OptionsEN:  []string{"Basic Nun Sakinah", "Mudd Rules", "Makharij (Exit Points)"},
			OptionsAR:  []string{"أحكام النون الساكنة", "أحكام المد", "مخارج الحروف"},
		},
		{
			Section:    "Hadith",
			Identifier: "hadith_collection",
			TextEN:     "Collections you can teach?",
			TextAR:     "المجموعات التي يمكنك تدريسها؟",
			OptionsEN:  []string{"Sahih Bukhari", "Sahih Muslim", "40 Hadith Nawawi", "Riyad as-Salihin"},
			OptionsAR:  []string{"صحيح البخاري", "صحيح مسلم", "الأربعين النووية", "رياض الصالحين"},
		},
		{
			Section:    "Hadith",
			Identifier: "hadith_language",
			TextEN:     "Languages you can teach in?",
			TextAR:     "اللغات التي يمكنك التدريس بها؟",
			OptionsEN:  []string{"English", "Arabic", "Amharic", "Oromo"},
			OptionsAR:  []string{"الإنجليزية", "العربية", "الأمهرية", "الأورومو"},
		},
		{
			Section:    "Arabic Language",
			Identifier: "arabic_teaching_level",
			TextEN:     "Level you can teach?",
			TextAR:     "المستوى الذي يمكنك تدريسه؟",
			OptionsEN:  []string{"Beginner", "Intermediate", "Advanced"},
			OptionsAR:  []string{"مبتدئ", "متوسط", "متقدم"},
		},
		{
			Section:    "Arabic Language",
			Identifier: "arabic_dialect",
			TextEN:     "Dialects you can teach?",
			TextAR:     "اللهجات التي يمكنك تدريسها؟",
			OptionsEN:  []string{"Fusha (Modern Standard)", "Egyptian", "Levantine", "Gulf", "North African"},
			OptionsAR:  []string{"الفصحى", "المصرية", "الشامية", "الخليجية", "المغاربية"},
		},
		{
			Section:    "Islamic Arts",
			Identifier: "art_type",
			TextEN:     "Arts you can teach?",
			TextAR:     "الفنون التي يمكنك تدريسها؟",
			OptionsEN:  []string{"Calligraphy", "Geometric Patterns", "Illumination", "Architecture History"},
			OptionsAR:  []string{"الخط العربي", "الزخارف الهندسية", "التذهيب", "تاريخ العمارة"},
		},
		{
			Section:    "Islamic Arts",
			Identifier: "art_level",
			TextEN:     "Level you can teach?",
			TextAR:     "المستوى الذي يمكنك تدريسه؟",
			OptionsEN:  []string{"Beginner", "Hobbyist", "Professional"},
			OptionsAR:  []string{"مبتدئ", "هاوي", "محترف"},
		},
	})
}

func numbered(surveyType model.SurveyType, questions []model.SurveyQuestion) []model.SurveyQuestion {
	for i := range questions {
		questions[i].SurveyType = surveyType
		questions[i].QuestionType = model.QuestionTypeChoice
		questions[i].Order = i
		questions[i].IsActive = true
	}
	return questions
}
