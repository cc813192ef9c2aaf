package recommendation

import "github.com/jwalitptl/healthtrack-api/internal/model"

// Static catalogs. Content mirrors the in-app recommendation lists; the
// service only filters and matches, it never mutates these.

var exerciseCatalog = []model.Exercise{
	{
		Name:        "Brisk walking",
		Category:    "Cardio",
		Intensity:   model.IntensityLow,
		Description: "A 30-minute brisk walk raises the heart rate without stressing the joints. A good starting point for beginners and older adults.",
		Steps: []string{
			"Warm up with 5 minutes of slow walking",
			"Walk fast enough that talking takes slight effort",
			"Keep the pace for 20-30 minutes",
			"Cool down with 5 minutes of slow walking and stretch",
		},
	},
	{
		Name:        "Stationary cycling",
		Category:    "Cardio",
		Intensity:   model.IntensityMedium,
		Description: "Low-impact cycling that builds leg strength and endurance. Suitable for people with excess weight or knee concerns.",
		Steps: []string{
			"Adjust the saddle so the knee stays slightly bent at the bottom of the stroke",
			"Pedal lightly for 5 minutes to warm up",
			"Ride at moderate resistance for 20-40 minutes",
			"Lower the resistance and spin easy for 5 minutes",
		},
	},
	{
		Name:        "Swimming",
		Category:    "Cardio",
		Intensity:   model.IntensityMedium,
		Description: "A full-body workout with no joint load. Recommended for class 1 and class 2 obesity.",
		Steps: []string{
			"Start with 2-4 easy laps of any stroke",
			"Alternate one faster lap with one easy lap",
			"Swim a total of 20-30 minutes",
			"Finish with gentle floating or easy backstroke",
		},
	},
	{
		Name:        "Bodyweight strength circuit",
		Category:    "Strength",
		Intensity:   model.IntensityHigh,
		Description: "Squats, push-ups and planks in a circuit. Preserves muscle mass while losing weight.",
		Steps: []string{
			"10-15 squats with controlled tempo",
			"8-12 push-ups, on knees if needed",
			"Hold a plank for 20-40 seconds",
			"Rest 60 seconds and repeat 3 rounds",
		},
	},
	{
		Name:        "Yoga",
		Category:    "Flexibility",
		Intensity:   model.IntensityLow,
		Description: "Improves flexibility and balance and lowers stress, which helps control blood pressure.",
		Steps: []string{
			"Begin with deep breathing in a comfortable seat",
			"Move through cat-cow, downward dog and child's pose",
			"Hold each pose for 3-5 slow breaths",
			"End with 5 minutes of relaxation lying down",
		},
	},
	{
		Name:        "Interval jogging",
		Category:    "Cardio",
		Intensity:   model.IntensityHigh,
		Description: "Alternating jogging and walking burns more energy in less time. For users already comfortable with brisk walking.",
		Steps: []string{
			"Warm up with 5 minutes of brisk walking",
			"Jog 1 minute, walk 2 minutes",
			"Repeat the cycle 6-8 times",
			"Cool down with 5 minutes of easy walking",
		},
	},
}

var foodPlans = []model.FoodPlan{
	{
		Name:         "Low-sugar plan",
		Description:  "Reduced refined carbohydrate and sugar intake for users managing diabetes risk.",
		TargetGroups: []string{model.TargetGroupDiabetes},
		WeeklyPlan: map[string]model.DayMeals{
			"monday":    {Breakfast: "Boiled egg, whole-grain rice porridge", Lunch: "Grilled chicken with brown rice", Dinner: "Clear vegetable soup with tofu"},
			"tuesday":   {Breakfast: "Plain yogurt with nuts", Lunch: "Steamed fish with stir-fried greens", Dinner: "Chicken breast salad, no dressing sugar"},
			"wednesday": {Breakfast: "Unsweetened soy milk, boiled egg", Lunch: "Brown rice with minced pork and basil, less oil", Dinner: "Tofu and mushroom soup"},
			"thursday":  {Breakfast: "Whole-wheat toast with avocado", Lunch: "Grilled fish with vegetable soup", Dinner: "Stir-fried chicken with mixed vegetables"},
			"friday":    {Breakfast: "Rice porridge with egg, no added sugar", Lunch: "Chicken noodle soup, no sweetener", Dinner: "Steamed fish with ginger"},
			"saturday":  {Breakfast: "Plain omelet with brown rice", Lunch: "Papaya salad with grilled chicken, less sugar", Dinner: "Vegetable curry without coconut cream"},
			"sunday":    {Breakfast: "Unsweetened cereal with low-fat milk", Lunch: "Steamed chicken with blanched vegetables", Dinner: "Clear soup with egg tofu"},
		},
	},
	{
		Name:         "Calorie-deficit plan",
		Description:  "Portion-controlled meals aimed at gradual weight reduction for overweight and obese users.",
		TargetGroups: []string{model.TargetGroupOverweight, model.TargetGroupObese},
		WeeklyPlan: map[string]model.DayMeals{
			"monday":    {Breakfast: "Oatmeal with banana", Lunch: "Grilled chicken salad", Dinner: "Steamed fish with vegetables"},
			"tuesday":   {Breakfast: "Low-fat yogurt with fruit", Lunch: "Brown rice with stir-fried chicken", Dinner: "Vegetable soup with tofu"},
			"wednesday": {Breakfast: "Boiled eggs and whole-wheat toast", Lunch: "Noodle soup with lean pork, small portion", Dinner: "Grilled chicken with blanched greens"},
			"thursday":  {Breakfast: "Smoothie of greens and apple, no sugar", Lunch: "Steamed fish with brown rice", Dinner: "Mixed vegetable salad with egg"},
			"friday":    {Breakfast: "Rice porridge with chicken", Lunch: "Grilled fish with papaya salad", Dinner: "Tofu soup with mushrooms"},
			"saturday":  {Breakfast: "Whole-grain cereal with low-fat milk", Lunch: "Chicken breast with sweet potato", Dinner: "Clear vegetable soup"},
			"sunday":    {Breakfast: "Omelet with vegetables", Lunch: "Brown rice with steamed chicken", Dinner: "Grilled fish with green salad"},
		},
	},
	{
		Name:         "Balanced plan",
		Description:  "General healthy eating across all five food groups for users in the normal range.",
		TargetGroups: []string{model.TargetGroupAll},
		WeeklyPlan: map[string]model.DayMeals{
			"monday":    {Breakfast: "Rice porridge with egg", Lunch: "Chicken and basil with rice", Dinner: "Vegetable soup with fish"},
			"tuesday":   {Breakfast: "Whole-wheat sandwich with tuna", Lunch: "Noodle soup with fish balls", Dinner: "Stir-fried mixed vegetables with tofu"},
			"wednesday": {Breakfast: "Yogurt with granola", Lunch: "Fried rice with chicken, less oil", Dinner: "Grilled pork with papaya salad"},
			"thursday":  {Breakfast: "Boiled eggs with toast", Lunch: "Steamed chicken rice", Dinner: "Fish soup with vegetables"},
			"friday":    {Breakfast: "Fruit smoothie with oats", Lunch: "Brown rice with omelet and vegetables", Dinner: "Chicken soup with pumpkin"},
			"saturday":  {Breakfast: "Rice soup with minced pork", Lunch: "Grilled fish with rice and greens", Dinner: "Vegetable stir-fry with shrimp"},
			"sunday":    {Breakfast: "Pancakes with fresh fruit", Lunch: "Chicken salad with sesame dressing", Dinner: "Clear tofu soup with vegetables"},
		},
	},
}

var emergencyContacts = []model.EmergencyContact{
	{Name: "Emergency medical services", Number: "1669", Icon: "fa-truck-medical"},
	{Name: "Police", Number: "191", Icon: "fa-shield-halved"},
	{Name: "Fire and rescue", Number: "199", Icon: "fa-fire-extinguisher"},
	{Name: "Erawan emergency center", Number: "1646", Icon: "fa-hospital"},
	{Name: "Mental health hotline", Number: "1323", Icon: "fa-hand-holding-heart"},
	{Name: "Poison control center", Number: "1367", Icon: "fa-skull-crossbones"},
}
