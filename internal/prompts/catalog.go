package prompts

var qwenCatalog = Catalog{
	{
		Name: "Perspective",
		Prompts: []Prompt{
			{"Back View", "从背面视角"},
			{"Front View", "从正面视角"},
			{"Side View", "侧面视角"},
			{"Rotate Left 45°", "相机视角向左旋转45度"},
			{"Flip Scene", "把场景翻转过来"},
			{"Top-down View", "从上方视角"},
			{"Bird's Eye View", "Change the scene to a birds eye view"},
			{"Zoom Out", "缩小场景"},
		},
	},
	{
		Name: "Pose Control",
		Prompts: []Prompt{
			{"T-pose", "T字姿势"},
			{"A-pose", "A字姿势"},
			{"Standing Pose", "站立姿势"},
			{"Sitting Pose", "坐姿"},
			{"Squatting Pose", "蹲姿"},
			{"Kneeling Pose", "跪姿"},
			{"Running Pose", "跑步动作"},
			{"Jumping Pose", "跳跃动作"},
			{"Look at Camera", "看向相机"},
			{"Bend Forward", "向前弯曲"},
			{"Character A-Pose Sheet", "生成全身图像，从头到脚的正面视角。角色采用虚幻引擎A-Pose姿势：站立，双臂向下向外倾斜。纯色背景，光线充足，无道具，无其他人物。正面视角，纯色背景，专业中性摄影棚照明，高细节，柔和细腻的阴影，清晰的轮廓。照明和布置应确保全身解剖结构清晰可见，专门用于3D参考和重定向工作流程。纯色背景，无道具，无其他人物。一致的照明。参考图像风格——清晰的解剖学参考A-Pose。真实感细节，4K分辨率。"},
		},
	},
	{
		Name: "Style",
		Prompts: []Prompt{
			{"Pencil Sketch", "铅笔素描"},
			{"Manga Line Art", "线稿"},
			{"Oil Painting", "油画风格"},
			{"Watercolor", "水彩画风格"},
			{"Comic Book", "漫画风格"},
			{"Neon Effect", "霓虹效果"},
			{"Sepia Tone", "Change the scene to sepia tone"},
			{"B&W Style", "黑白风格"},
		},
	},
	{
		Name: "Lighting & Color",
		Prompts: []Prompt{
			{"Add Colors", "Add colours to the scene"},
			{"Brighter", "提高亮度"},
			{"Darker", "降低亮度"},
			{"Increase Contrast", "增加对比度"},
			{"Change to Day", "Change the scene to day"},
			{"Change to Night", "Change the scene to night"},
			{"Studio Light", "Studio lighting"},
			{"Change Weather to...", "Change the weather to "},
		},
	},
	{
		Name: "Object & Composition",
		Prompts: []Prompt{
			{"Remove Background", "移除背景"},
			{"Blur Background", "背景模糊"},
			{"Remove [Object]", "移除[对象]"},
			{"Add [Object]", "添加[具体对象]"},
			{"Change [Object] Color", "Change the [object] to [color]"},
			{"Make [Object] Bigger", "放大[对象]"},
			{"Make [Object] Smaller", "缩小[对象]"},
			{"Sharpen Image", "图像锐化"},
		},
	},
}

var geminiCatalog = Catalog{
	{
		Name: "Style",
		Prompts: []Prompt{
			{"Pencil Sketch", "Convert the image to a detailed pencil sketch."},
			{"Oil Painting", "Transform the image into an oil painting with visible brush strokes."},
			{"Watercolor", "Give the image a soft, watercolor-painted look."},
			{"Comic Book", "Apply a comic book art style with bold lines and halftone dots."},
			{"Neon Glow", "Add a futuristic neon glow effect to the subject."},
			{"Sepia Tone", "Apply a classic sepia tone filter for a vintage look."},
			{"Black & White", "Convert the image to a high-contrast black and white photo."},
		},
	},
	{
		Name: "Pose Control",
		Prompts: []Prompt{
			{"T-pose", "Change the person's pose to a T-pose."},
			{"A-pose", "Change the person's pose to an A-pose."},
			{"Standing", "Make the person stand up straight."},
			{"Sitting", "Make the person sit down."},
			{"Running", "Change the pose to be a dynamic running motion."},
			{"Jumping", "Make the person appear as if they are jumping."},
			{"Look at Camera", "Make the person look directly at the camera."},
			{"Character A-Pose Sheet", "Change the character's pose to a standard Unreal Engine A-Pose (standing, with arms angled downward and outward). Make sure the character is seen full-body, from head to toe, in a clear front view. Replace the background with a neutral solid color. Apply professional, even studio lighting to clearly show the full body anatomy, creating a high-detail, photorealistic 3D reference image with soft shadows and a crisp silhouette."},
		},
	},
	{
		Name: "Lighting & Color",
		Prompts: []Prompt{
			{"Brighter", "Make the lighting in the image brighter and more vibrant."},
			{"Darker", "Make the lighting in the image darker and more moody."},
			{"Increase Contrast", "Increase the contrast between light and dark areas."},
			{"Golden Hour", "Change the lighting to a warm, golden hour glow."},
			{"Studio Lighting", "Apply professional studio lighting to the subject."},
			{"Change to Night", "Change the time of day in the image to night."},
		},
	},
	{
		Name: "Object & Composition",
		Prompts: []Prompt{
			{"Remove Background", "Completely remove the background, leaving only the main subject."},
			{"Blur Background", "Apply a strong blur to the background to create a depth-of-field effect."},
			{"Remove [Object]", "Remove the selected object from the image."},
			{"Add [Object]", "Add [a specific object] to the scene realistically."},
			{"Change Color of...", "Change the color of the selected object to [color]."},
			{"Make Bigger", "Make the selected object larger."},
			{"Make Smaller", "Make the selected object smaller."},
			{"Sharpen", "Slightly sharpen the details of the image."},
		},
	},
}
